package employee

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/storage"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
	"github.com/Muhammedsajid10/spaBackend/internal/service/file"
	scheduleService "github.com/Muhammedsajid10/spaBackend/internal/service/schedule"
)

var testEmployeeDB *database.DB

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return
	}

	var err error
	testEmployeeDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

func requireEmployeeDB(t *testing.T) {
	if testEmployeeDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func truncateEmployeeTables(t *testing.T, ctx context.Context) {
	tables := []string{
		"feedback", "attendances", "booking_items", "bookings",
		"work_schedule_days", "services", "service_categories",
		"employees", "users",
	}

	for _, table := range tables {
		_, err := testEmployeeDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func createEmployeeTestUser(t *testing.T, ctx context.Context, role string) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	email := fmt.Sprintf("%s%d@example.com", role, time.Now().UnixNano())

	err := testEmployeeDB.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, email_verified, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test', 'User', $1, $2, $3, true, true, NOW(), NOW())
		RETURNING id
	`, email, string(hashedPassword), role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createTestEmployee(t *testing.T, ctx context.Context, userID string) *employee.Employee {
	repo := postgresql.NewEmployeeRepository(testEmployeeDB)
	emp, err := repo.Create(ctx, &employee.Employee{
		UserID:          userID,
		Code:            fmt.Sprintf("EMP%d", time.Now().UnixNano()),
		Position:        employee.PositionMassageTherapist,
		Department:      employee.DepartmentSpaServices,
		HireDate:        time.Now().UTC().AddDate(-1, 0, 0),
		CommissionRate:  0.1,
		Specializations: []string{"massage"},
		Availability:    employee.Availability{IsAvailable: true, UnavailableDates: []employee.UnavailableDate{}},
	})
	require.NoError(t, err)
	return emp
}

func newTestEmployeeService(t *testing.T) employee.Service {
	employeeRepo := postgresql.NewEmployeeRepository(testEmployeeDB)
	userRepo := postgresql.NewUserRepository(testEmployeeDB)
	scheduleRepo := postgresql.NewScheduleRepository(testEmployeeDB)
	bookingRepo := postgresql.NewBookingRepository(testEmployeeDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testEmployeeDB)
	feedbackRepo := postgresql.NewFeedbackRepository(testEmployeeDB)

	scheduleSvc := scheduleService.NewScheduleService(testEmployeeDB, scheduleRepo, employeeRepo, bookingRepo, attendanceRepo)

	store, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)
	fileSvc := file.NewFileService(store)

	return NewEmployeeService(testEmployeeDB, employeeRepo, userRepo, scheduleSvc, bookingRepo, attendanceRepo, feedbackRepo, fileSvc)
}

func staffContext(t *testing.T, userID, employeeID string, role user.Role) context.Context {
	builder := jwxjwt.NewBuilder().
		Claim("user_id", userID).
		Claim("role", string(role)).
		Claim("type", "access")
	if employeeID != "" {
		builder = builder.Claim("employee_id", employeeID)
	}

	tok, err := builder.Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestGetByID_EmployeeReachesOwnRecordOnly(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	ownUserID := createEmployeeTestUser(t, ctx, "employee")
	own := createTestEmployee(t, ctx, ownUserID)
	otherUserID := createEmployeeTestUser(t, ctx, "employee")
	other := createTestEmployee(t, ctx, otherUserID)

	svc := newTestEmployeeService(t)
	callerCtx := staffContext(t, ownUserID, own.ID, user.RoleEmployee)

	found, err := svc.GetByID(callerCtx, own.ID)
	require.NoError(t, err)
	assert.Equal(t, own.ID, found.ID)

	_, err = svc.GetByID(callerCtx, other.ID)
	assert.ErrorIs(t, err, employee.ErrForbiddenSelfOnly)
}

func TestGetByID_ManagerReachesAnyRecord(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	empUserID := createEmployeeTestUser(t, ctx, "employee")
	emp := createTestEmployee(t, ctx, empUserID)
	managerUserID := createEmployeeTestUser(t, ctx, "manager")

	svc := newTestEmployeeService(t)

	found, err := svc.GetByID(staffContext(t, managerUserID, "", user.RoleManager), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, found.ID)
}

func TestUpdate_SelfUpdateCannotChangePay(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	userID := createEmployeeTestUser(t, ctx, "employee")
	emp := createTestEmployee(t, ctx, userID)

	svc := newTestEmployeeService(t)
	callerCtx := staffContext(t, userID, emp.ID, user.RoleEmployee)

	salary := 99999.0
	position := employee.PositionManager
	updated, err := svc.Update(callerCtx, emp.ID, employee.UpdateRequest{
		Salary:          &salary,
		Position:        &position,
		Specializations: []string{"massage", "aromatherapy"},
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Salary)
	assert.Equal(t, employee.PositionMassageTherapist, updated.Position)
	assert.Equal(t, []string{"massage", "aromatherapy"}, updated.Specializations)
}

func TestList_CarriesWeeklySchedule(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	empUserID := createEmployeeTestUser(t, ctx, "employee")
	emp := createTestEmployee(t, ctx, empUserID)
	managerUserID := createEmployeeTestUser(t, ctx, "manager")
	managerCtx := staffContext(t, managerUserID, "", user.RoleManager)

	scheduleRepo := postgresql.NewScheduleRepository(testEmployeeDB)
	employeeRepo := postgresql.NewEmployeeRepository(testEmployeeDB)
	bookingRepo := postgresql.NewBookingRepository(testEmployeeDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testEmployeeDB)
	scheduleSvc := scheduleService.NewScheduleService(testEmployeeDB, scheduleRepo, employeeRepo, bookingRepo, attendanceRepo)

	start := "09:00"
	end := "17:00"
	weekStart := dateutil.WeekStart(time.Now())
	_, err := scheduleSvc.UpdateWeek(managerCtx, emp.ID, schedule.UpdateWeekRequest{
		WorkSchedule: map[string]schedule.DaySchedule{
			"monday": {IsWorking: true, StartTime: &start, EndTime: &end},
		},
		WeekStartDate: weekStart.Format("2006-01-02"),
	})
	require.NoError(t, err)

	svc := newTestEmployeeService(t)
	list, total, err := svc.List(managerCtx, employee.ListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	monday := list[0].WorkSchedule.Monday
	assert.True(t, monday.IsWorking)
	require.NotNil(t, monday.StartTime)
	assert.Equal(t, "09:00", *monday.StartTime)
}

func TestDeactivate_RevertsUserToClient(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	userID := createEmployeeTestUser(t, ctx, "employee")
	emp := createTestEmployee(t, ctx, userID)
	managerUserID := createEmployeeTestUser(t, ctx, "manager")

	svc := newTestEmployeeService(t)
	err := svc.Deactivate(staffContext(t, managerUserID, "", user.RoleManager), emp.ID, "resigned")
	require.NoError(t, err)

	account, err := postgresql.NewUserRepository(testEmployeeDB).GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleClient, account.Role)
	assert.True(t, account.IsActive, "the account stays usable as a client")
}

func TestGetPerformance_AggregatesBookings(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	empUserID := createEmployeeTestUser(t, ctx, "employee")
	emp := createTestEmployee(t, ctx, empUserID)
	clientID := createEmployeeTestUser(t, ctx, "client")

	catalogRepo := postgresql.NewCatalogRepository(testEmployeeDB)
	category, err := catalogRepo.CreateCategory(ctx, &catalog.Category{Name: "massage", DisplayName: "Massage"})
	require.NoError(t, err)
	treatment, err := catalogRepo.CreateService(ctx, &catalog.Service{
		CategoryID:      category.ID,
		Name:            "Deep Tissue Massage",
		DurationMinutes: 60,
		Price:           decimal.NewFromInt(450),
		Currency:        "AED",
		IsActive:        true,
	})
	require.NoError(t, err)

	appointment := time.Now().UTC().AddDate(0, 0, -1)
	bookingRepo := postgresql.NewBookingRepository(testEmployeeDB)
	_, err = bookingRepo.Create(ctx, &booking.Booking{
		BookingNumber:   fmt.Sprintf("BK%d", time.Now().UnixNano()),
		ClientID:        clientID,
		AppointmentDate: appointment,
		Items: []booking.Item{{
			ServiceID:       treatment.ID,
			EmployeeID:      emp.ID,
			StartTime:       appointment,
			EndTime:         appointment.Add(time.Hour),
			Price:           decimal.NewFromInt(450),
			DurationMinutes: 60,
			Status:          booking.StatusCompleted,
		}},
		TotalDuration: 60,
		TotalAmount:   decimal.NewFromInt(450),
		Currency:      "AED",
		Status:        booking.StatusCompleted,
		PaymentStatus: booking.PaymentPaid,
	})
	require.NoError(t, err)

	svc := newTestEmployeeService(t)
	perf, err := svc.GetPerformance(staffContext(t, empUserID, emp.ID, user.RoleEmployee), emp.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, perf.Performance.TotalBookings)
	assert.Equal(t, 1, perf.Performance.CompletedBookings)
	assert.Equal(t, 450.0, perf.Performance.Revenue)
	require.Len(t, perf.BookingStats, 1)
	assert.Equal(t, booking.StatusCompleted, perf.BookingStats[0].Status)
}

func TestGetPerformance_EmployeeCannotReadOthers(t *testing.T) {
	requireEmployeeDB(t)
	ctx := context.Background()
	truncateEmployeeTables(t, ctx)

	ownUserID := createEmployeeTestUser(t, ctx, "employee")
	own := createTestEmployee(t, ctx, ownUserID)
	otherUserID := createEmployeeTestUser(t, ctx, "employee")
	other := createTestEmployee(t, ctx, otherUserID)

	svc := newTestEmployeeService(t)
	_, err := svc.GetPerformance(staffContext(t, ownUserID, own.ID, user.RoleEmployee), other.ID)
	assert.ErrorIs(t, err, employee.ErrForbiddenSelfOnly)
}
