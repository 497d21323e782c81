package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/email"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/validator"
)

type BookingServiceImpl struct {
	db *database.DB
	booking.Repository
	catalogRepo  catalog.Repository
	userRepo     user.Repository
	emailService email.EmailService
}

func NewBookingService(
	db *database.DB,
	bookingRepo booking.Repository,
	catalogRepo catalog.Repository,
	userRepo user.Repository,
	emailService email.EmailService,
) booking.Service {
	return &BookingServiceImpl{
		db:           db,
		Repository:   bookingRepo,
		catalogRepo:  catalogRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Create implements booking.Service. Each item's end time comes from its
// service duration; every assigned employee must be conflict-free.
func (s *BookingServiceImpl) Create(ctx context.Context, req booking.CreateRequest) (*booking.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	clientID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	appointmentDate, _ := validator.IsValidDate(req.AppointmentDate)

	items := make([]booking.Item, 0, len(req.Items))
	currency := ""
	for _, itemReq := range req.Items {
		svc, err := s.catalogRepo.GetServiceByID(ctx, itemReq.ServiceID)
		if err != nil {
			return nil, err
		}
		if !svc.IsActive {
			return nil, catalog.ErrServiceInactive
		}
		if currency == "" {
			currency = svc.Currency
		}

		startTime, _ := validator.IsValidDateTime(itemReq.StartTime)
		endTime := startTime.Add(time.Duration(svc.DurationMinutes) * time.Minute)

		conflict, err := s.Repository.HasConflict(ctx, itemReq.EmployeeID, startTime, endTime)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot conflict: %w", err)
		}
		if conflict {
			return nil, booking.ErrSlotConflict
		}

		items = append(items, booking.Item{
			ServiceID:       svc.ID,
			EmployeeID:      itemReq.EmployeeID,
			StartTime:       startTime,
			EndTime:         endTime,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
			Status:          booking.StatusConfirmed,
			ServiceName:     svc.Name,
		})
	}

	seq, err := s.Repository.NextSequence(ctx, appointmentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking sequence: %w", err)
	}

	newBooking := &booking.Booking{
		BookingNumber:   booking.NumberFor(appointmentDate, seq),
		ClientID:        clientID,
		AppointmentDate: appointmentDate,
		Items:           items,
		Currency:        currency,
		Status:          booking.StatusConfirmed,
		PaymentStatus:   booking.PaymentUnpaid,
		Notes:           req.Notes,
	}
	newBooking.Recompute()

	created, err := s.Repository.Create(ctx, newBooking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Re-read for the joined client and employee names
	full, err := s.Repository.GetByID(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if client, err := s.userRepo.GetByID(ctx, clientID); err == nil {
		serviceNames := make([]string, 0, len(full.Items))
		for _, item := range full.Items {
			serviceNames = append(serviceNames, item.ServiceName)
		}
		go s.emailService.SendBookingConfirmation(
			client.Email,
			full.ClientName(),
			full.BookingNumber,
			full.AppointmentDate.Format("2 January 2006"),
			strings.Join(serviceNames, ", "),
			full.TotalAmount.StringFixed(2)+" "+full.Currency,
		)
	}

	resp := booking.ToResponse(full)
	return &resp, nil
}

// GetByID implements booking.Service. Clients may only read their own
// bookings; staff may read any.
func (s *BookingServiceImpl) GetByID(ctx context.Context, id string) (*booking.Response, error) {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeBookingRead(ctx, found); err != nil {
		return nil, err
	}

	resp := booking.ToResponse(found)
	return &resp, nil
}

// List implements booking.Service.
func (s *BookingServiceImpl) List(ctx context.Context, filter booking.ListFilter) ([]booking.Response, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	bookings, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	responses := make([]booking.Response, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, booking.ToResponse(&bookings[i]))
	}
	return responses, total, nil
}

// ListMine implements booking.Service.
func (s *BookingServiceImpl) ListMine(ctx context.Context) ([]booking.Response, error) {
	clientID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	bookings, _, err := s.Repository.List(ctx, booking.ListFilter{
		Page:     1,
		Limit:    100,
		ClientID: clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	responses := make([]booking.Response, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, booking.ToResponse(&bookings[i]))
	}
	return responses, nil
}

// UpdateStatus implements booking.Service.
func (s *BookingServiceImpl) UpdateStatus(ctx context.Context, id string, req booking.UpdateStatusRequest) (*booking.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch found.Status {
	case booking.StatusCompleted:
		if req.Status != booking.StatusCompleted {
			return nil, booking.ErrAlreadyCompleted
		}
	case booking.StatusCancelled:
		if req.Status != booking.StatusCancelled {
			return nil, booking.ErrAlreadyCancelled
		}
	}

	if err := s.Repository.UpdateStatus(ctx, id, req.Status, req.Reason); err != nil {
		return nil, err
	}

	updated, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := booking.ToResponse(updated)
	return &resp, nil
}

// Cancel implements booking.Service. Clients cancel their own bookings; the
// domain rules refuse terminal states.
func (s *BookingServiceImpl) Cancel(ctx context.Context, id string, reason string) error {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorizeBookingRead(ctx, found); err != nil {
		return err
	}

	if err := found.Cancel(reason); err != nil {
		return err
	}

	return s.Repository.UpdateStatus(ctx, id, booking.StatusCancelled, found.CancelReason)
}

func (s *BookingServiceImpl) authorizeBookingRead(ctx context.Context, b *booking.Booking) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, _ := claims["role"].(string)
	if role != string(user.RoleClient) {
		return nil
	}

	userID, _ := claims["user_id"].(string)
	if userID != b.ClientID {
		return booking.ErrNotYourBooking
	}
	return nil
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}
