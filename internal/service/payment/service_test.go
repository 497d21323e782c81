package payment

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
	"github.com/Muhammedsajid10/spaBackend/internal/domain/payment"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/repository/postgresql"
)

var testPaymentDB *database.DB

func init() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return
	}

	var err error
	testPaymentDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
}

func requirePaymentDB(t *testing.T) {
	if testPaymentDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func truncatePaymentTables(t *testing.T, ctx context.Context) {
	tables := []string{"payments", "booking_items", "bookings", "users"}

	for _, table := range tables {
		_, err := testPaymentDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func createPaymentTestClient(t *testing.T, ctx context.Context) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	email := fmt.Sprintf("client%d@example.com", time.Now().UnixNano())

	err := testPaymentDB.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, email_verified, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Test', 'Client', $1, $2, 'client', true, true, NOW(), NOW())
		RETURNING id
	`, email, string(hashedPassword)).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createPaymentTestBooking(t *testing.T, ctx context.Context, clientID string) *booking.Booking {
	repo := postgresql.NewBookingRepository(testPaymentDB)
	created, err := repo.Create(ctx, &booking.Booking{
		BookingNumber:   fmt.Sprintf("BK%d", time.Now().UnixNano()),
		ClientID:        clientID,
		AppointmentDate: time.Now().UTC().AddDate(0, 0, 1),
		TotalDuration:   60,
		TotalAmount:     decimal.NewFromInt(410),
		Currency:        "AED",
		Status:          booking.StatusConfirmed,
		PaymentStatus:   booking.PaymentUnpaid,
	})
	require.NoError(t, err)
	return created
}

func newTestPaymentService(t *testing.T) payment.Service {
	paymentRepo := postgresql.NewPaymentRepository(testPaymentDB)
	bookingRepo := postgresql.NewBookingRepository(testPaymentDB)
	return NewPaymentService(testPaymentDB, paymentRepo, bookingRepo, nil, nil)
}

func claimsContext(t *testing.T, userID string, role user.Role) context.Context {
	tok, err := jwxjwt.NewBuilder().
		Claim("user_id", userID).
		Claim("role", string(role)).
		Claim("type", "access").
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func TestCreateIntent_CashCompletesImmediately(t *testing.T) {
	requirePaymentDB(t)
	ctx := context.Background()
	truncatePaymentTables(t, ctx)

	clientID := createPaymentTestClient(t, ctx)
	b := createPaymentTestBooking(t, ctx, clientID)
	svc := newTestPaymentService(t)

	resp, err := svc.CreateIntent(claimsContext(t, clientID, user.RoleClient), payment.CreateIntentRequest{
		BookingID: b.ID,
		Amount:    410,
		Currency:  "AED",
		Method:    payment.MethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, resp.Status)

	updated, err := postgresql.NewBookingRepository(testPaymentDB).GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentPaid, updated.PaymentStatus)
}

func TestCreateIntent_RejectsSecondPaymentForBooking(t *testing.T) {
	requirePaymentDB(t)
	ctx := context.Background()
	truncatePaymentTables(t, ctx)

	clientID := createPaymentTestClient(t, ctx)
	b := createPaymentTestBooking(t, ctx, clientID)

	paymentRepo := postgresql.NewPaymentRepository(testPaymentDB)
	_, err := paymentRepo.Create(ctx, &payment.Payment{
		BookingID:   b.ID,
		ClientID:    clientID,
		AmountCents: 41000,
		Currency:    "AED",
		Method:      payment.MethodCard,
		Gateway:     payment.GatewayStripe,
		Status:      payment.StatusPending,
	})
	require.NoError(t, err)

	svc := newTestPaymentService(t)
	_, err = svc.CreateIntent(claimsContext(t, clientID, user.RoleClient), payment.CreateIntentRequest{
		BookingID: b.ID,
		Amount:    410,
		Currency:  "AED",
		Method:    payment.MethodCash,
	})
	assert.ErrorIs(t, err, payment.ErrPaymentExists)
}

func TestCreateIntent_FailedPaymentDoesNotBlockRetry(t *testing.T) {
	requirePaymentDB(t)
	ctx := context.Background()
	truncatePaymentTables(t, ctx)

	clientID := createPaymentTestClient(t, ctx)
	b := createPaymentTestBooking(t, ctx, clientID)

	paymentRepo := postgresql.NewPaymentRepository(testPaymentDB)
	_, err := paymentRepo.Create(ctx, &payment.Payment{
		BookingID:   b.ID,
		ClientID:    clientID,
		AmountCents: 41000,
		Currency:    "AED",
		Method:      payment.MethodCard,
		Gateway:     payment.GatewayStripe,
		Status:      payment.StatusFailed,
	})
	require.NoError(t, err)

	svc := newTestPaymentService(t)
	resp, err := svc.CreateIntent(claimsContext(t, clientID, user.RoleClient), payment.CreateIntentRequest{
		BookingID: b.ID,
		Amount:    410,
		Currency:  "AED",
		Method:    payment.MethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, resp.Status)
}

func TestCreateIntent_ClientCannotPayAnotherClientsBooking(t *testing.T) {
	requirePaymentDB(t)
	ctx := context.Background()
	truncatePaymentTables(t, ctx)

	ownerID := createPaymentTestClient(t, ctx)
	otherID := createPaymentTestClient(t, ctx)
	b := createPaymentTestBooking(t, ctx, ownerID)

	svc := newTestPaymentService(t)
	_, err := svc.CreateIntent(claimsContext(t, otherID, user.RoleClient), payment.CreateIntentRequest{
		BookingID: b.ID,
		Amount:    410,
		Currency:  "AED",
		Method:    payment.MethodCash,
	})
	assert.ErrorIs(t, err, booking.ErrNotYourBooking)
}

func TestCreateIntent_ManagerRecordsCashForClient(t *testing.T) {
	requirePaymentDB(t)
	ctx := context.Background()
	truncatePaymentTables(t, ctx)

	clientID := createPaymentTestClient(t, ctx)
	managerID := createPaymentTestClient(t, ctx)
	b := createPaymentTestBooking(t, ctx, clientID)

	svc := newTestPaymentService(t)
	resp, err := svc.CreateIntent(claimsContext(t, managerID, user.RoleManager), payment.CreateIntentRequest{
		BookingID: b.ID,
		Amount:    410,
		Currency:  "AED",
		Method:    payment.MethodCash,
	})
	require.NoError(t, err)

	p, err := postgresql.NewPaymentRepository(testPaymentDB).GetByID(ctx, resp.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, clientID, p.ClientID, "payment belongs to the booking's client, not the cashier")
}
