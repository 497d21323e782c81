package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/attendance"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/feedback"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/schedule"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/dateutil"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
	"github.com/Muhammedsajid10/spaBackend/internal/service/file"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.Repository
	userRepo       user.Repository
	scheduleSvc    schedule.Service
	bookingRepo    booking.Repository
	attendanceRepo attendance.Repository
	feedbackRepo   feedback.Repository
	fileService    file.FileService
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.Repository,
	userRepo user.Repository,
	scheduleSvc schedule.Service,
	bookingRepo booking.Repository,
	attendanceRepo attendance.Repository,
	feedbackRepo feedback.Repository,
	fileService file.FileService,
) employee.Service {
	return &EmployeeServiceImpl{
		db:             db,
		Repository:     employeeRepo,
		userRepo:       userRepo,
		scheduleSvc:    scheduleSvc,
		bookingRepo:    bookingRepo,
		attendanceRepo: attendanceRepo,
		feedbackRepo:   feedbackRepo,
		fileService:    fileService,
	}
}

// Create implements employee.Service. The linked user is promoted to the
// employee role.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (*employee.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := s.Repository.GetByUserID(ctx, req.UserID); err == nil {
		return nil, employee.ErrUserAlreadyEmployee
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}

	code, err := s.Repository.NextCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate employee code: %w", err)
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	specializations := req.Specializations
	if specializations == nil {
		specializations = []string{}
	}

	created, err := s.Repository.Create(ctx, &employee.Employee{
		UserID:          req.UserID,
		Code:            code,
		Position:        req.Position,
		Department:      req.Department,
		HireDate:        hireDate,
		Salary:          req.Salary,
		CommissionRate:  req.CommissionRate,
		Specializations: specializations,
		Availability:    employee.Availability{IsAvailable: true, UnavailableDates: []employee.UnavailableDate{}},
		Documents:       []employee.Document{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	if account.Role == user.RoleClient {
		if err := s.userRepo.UpdateRole(ctx, account.ID, user.RoleEmployee); err != nil {
			return nil, fmt.Errorf("failed to update user role: %w", err)
		}
	}

	return s.toResponse(ctx, created)
}

// List implements employee.Service. Each row carries the projected current
// week, same as GetByID.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Response, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	employees, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.Response, 0, len(employees))
	for i := range employees {
		resp, err := s.toResponse(ctx, &employees[i])
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *resp)
	}
	return responses, total, nil
}

// GetByID implements employee.Service. The response carries the projected
// current week. Employees can only fetch their own record.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (*employee.Response, error) {
	if _, err := s.authorizeEmployeeAccess(ctx, id); err != nil {
		return nil, err
	}

	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.toResponse(ctx, emp)
}

// Update implements employee.Service. Profile fields are partial; schedule
// edits ride along and land on the week anchored by weekStartDate. Employees
// updating themselves are limited to the self-editable fields.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateRequest) (*employee.Response, error) {
	selfOnly, err := s.authorizeEmployeeAccess(ctx, id)
	if err != nil {
		return nil, err
	}
	if selfOnly {
		req = req.SelfEditable()
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Salary != nil {
		emp.Salary = req.Salary
	}
	if req.CommissionRate != nil {
		emp.CommissionRate = *req.CommissionRate
	}
	if req.Specializations != nil {
		emp.Specializations = req.Specializations
	}

	if err := s.Repository.Update(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	if len(req.WorkSchedule) > 0 {
		weekReq := schedule.UpdateWeekRequest{
			WorkSchedule:  req.WorkSchedule,
			WeekStartDate: req.WeekStartDate,
		}
		if _, err := s.scheduleSvc.UpdateWeek(ctx, id, weekReq); err != nil {
			return nil, err
		}
	}

	return s.toResponse(ctx, emp)
}

// Deactivate implements employee.Service. The linked user account survives
// and drops back to the client role.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string, reason string) error {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	active, err := s.bookingRepo.CountActiveByEmployee(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count active bookings: %w", err)
	}
	if active > 0 {
		return employee.ErrHasActiveBookings
	}

	if err := s.Repository.Deactivate(ctx, id, time.Now().UTC(), reason); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	// The person keeps their account; they just stop being staff.
	return s.userRepo.UpdateRole(ctx, emp.UserID, user.RoleClient)
}

// UpdateAvailability implements employee.Service.
func (s *EmployeeServiceImpl) UpdateAvailability(ctx context.Context, id string, req employee.AvailabilityRequest) (*employee.Availability, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	dates := req.UnavailableDates
	if dates == nil {
		dates = []employee.UnavailableDate{}
	}

	availability := employee.Availability{
		IsAvailable:      *req.IsAvailable,
		UnavailableDates: dates,
	}

	if err := s.Repository.UpdateAvailability(ctx, id, availability); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}

	return &availability, nil
}

// GetAvailable implements employee.Service. An employee qualifies when they
// can perform the service, are not blocked out, and have no booking overlap.
func (s *EmployeeServiceImpl) GetAvailable(ctx context.Context, filter employee.AvailableFilter) ([]employee.Response, error) {
	candidates, err := s.Repository.ListByService(ctx, filter.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for service: %w", err)
	}

	responses := make([]employee.Response, 0, len(candidates))
	for i := range candidates {
		emp := &candidates[i]

		if !emp.Availability.IsAvailable || emp.UnavailableOn(dateutil.UTCDay(filter.StartTime)) {
			continue
		}

		conflict, err := s.bookingRepo.HasConflict(ctx, emp.ID, filter.StartTime, filter.EndTime)
		if err != nil {
			return nil, fmt.Errorf("failed to check booking conflict: %w", err)
		}
		if conflict {
			continue
		}

		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// Search implements employee.Service.
func (s *EmployeeServiceImpl) Search(ctx context.Context, query string) ([]employee.Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, employee.ErrSearchQueryRequired
	}

	employees, err := s.Repository.Search(ctx, query, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	responses := make([]employee.Response, 0, len(employees))
	for i := range employees {
		responses = append(responses, employee.ToResponse(&employees[i]))
	}
	return responses, nil
}

// Stats implements employee.Service.
func (s *EmployeeServiceImpl) Stats(ctx context.Context) (*employee.StatsResponse, error) {
	stats, err := s.Repository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee stats: %w", err)
	}
	return stats, nil
}

// UploadDocument implements employee.Service.
func (s *EmployeeServiceImpl) UploadDocument(ctx context.Context, id string, req employee.DocumentUploadRequest) (*employee.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	path, err := s.fileService.UploadEmployeeDocument(ctx, id, req.File, req.FileHeader.Filename, req.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	name := req.Name
	if name == "" {
		name = req.FileHeader.Filename
	}

	doc := employee.Document{
		ID:         uuid.New().String(),
		Type:       req.Type,
		Name:       name,
		URL:        path,
		UploadDate: time.Now().UTC(),
	}

	if err := s.Repository.AddDocument(ctx, id, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return &doc, nil
}

// GetMyRatings implements employee.Service.
func (s *EmployeeServiceImpl) GetMyRatings(ctx context.Context) (*employee.RatingsResponse, error) {
	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.feedbackRepo.SummaryByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback summary: %w", err)
	}

	recent, err := s.feedbackRepo.ListByEmployee(ctx, employeeID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	entries := make([]employee.RatingEntry, 0, len(recent))
	for i := range recent {
		f := &recent[i]
		entries = append(entries, employee.RatingEntry{
			Rating:      f.Rating,
			Comment:     f.Comment,
			ClientName:  f.ClientName(),
			ServiceName: f.ServiceName,
			SubmittedAt: f.SubmittedAt,
		})
	}

	return &employee.RatingsResponse{
		Average:   summary.Average,
		Total:     summary.Total,
		Breakdown: summary.Breakdown,
		Recent:    entries,
	}, nil
}

// GetPerformance implements employee.Service. Booking figures cover the
// employee's whole history; attendance covers the last 30 days.
func (s *EmployeeServiceImpl) GetPerformance(ctx context.Context, id string) (*employee.PerformanceResponse, error) {
	if _, err := s.authorizeEmployeeAccess(ctx, id); err != nil {
		return nil, err
	}

	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	bookingStats, err := s.bookingRepo.StatsByEmployee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	attendanceStats, err := s.attendanceRepo.StatsByEmployee(ctx, id, time.Now().UTC().AddDate(0, 0, -30))
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance stats: %w", err)
	}

	summary, err := s.feedbackRepo.SummaryByEmployee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback summary: %w", err)
	}

	perf := emp.Performance
	perf.RatingAverage = summary.Average
	perf.RatingCount = summary.Total

	revenue := decimal.Zero
	perf.TotalBookings = 0
	for _, st := range bookingStats {
		perf.TotalBookings += st.Count
		switch st.Status {
		case booking.StatusCompleted:
			perf.CompletedBookings = st.Count
			revenue = revenue.Add(st.Revenue)
		case booking.StatusCancelled:
			perf.CancelledBookings = st.Count
		}
	}
	perf.Revenue = revenue.InexactFloat64()

	return &employee.PerformanceResponse{
		Performance:     perf,
		BookingStats:    bookingStats,
		AttendanceStats: attendanceStats,
	}, nil
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, emp *employee.Employee) (*employee.Response, error) {
	resp := employee.ToResponse(emp)

	view, err := s.scheduleSvc.WeeklyViewFor(ctx, emp.ID, time.Now())
	if err != nil {
		return nil, err
	}
	resp.WorkSchedule = *view

	return &resp, nil
}

// authorizeEmployeeAccess lets managers reach any record. A plain employee
// only passes for their own id, and the selfOnly flag tells the caller to
// apply the reduced permission set.
func (s *EmployeeServiceImpl) authorizeEmployeeAccess(ctx context.Context, id string) (selfOnly bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role == string(user.RoleAdmin) || role == string(user.RoleManager) {
		return false, nil
	}

	ownID, _ := claims["employee_id"].(string)
	if ownID == "" || ownID != id {
		return false, employee.ErrForbiddenSelfOnly
	}
	return true, nil
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", user.ErrEmployeeAccessRequired
	}

	return employeeID, nil
}
