package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/booking"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/feedback"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

const listLimit = 50

type FeedbackServiceImpl struct {
	db *database.DB
	feedback.Repository
	bookingRepo booking.Repository
}

func NewFeedbackService(
	db *database.DB,
	feedbackRepo feedback.Repository,
	bookingRepo booking.Repository,
) feedback.Service {
	return &FeedbackServiceImpl{
		db:          db,
		Repository:  feedbackRepo,
		bookingRepo: bookingRepo,
	}
}

// Submit implements feedback.Service. The booking must belong to the caller,
// be completed, and contain the rated service slot.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, req feedback.SubmitRequest) (*feedback.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	clientID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if b.ClientID != clientID {
		return nil, feedback.ErrBookingNotYours
	}
	if b.Status != booking.StatusCompleted {
		return nil, feedback.ErrBookingNotEligible
	}

	found := false
	for _, item := range b.Items {
		if item.ServiceID == req.ServiceID && item.EmployeeID == req.EmployeeID {
			found = true
			break
		}
	}
	if !found {
		return nil, feedback.ErrBookingNotEligible
	}

	created, err := s.Repository.Create(ctx, &feedback.Feedback{
		BookingID:   req.BookingID,
		ServiceID:   req.ServiceID,
		EmployeeID:  req.EmployeeID,
		ClientID:    clientID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		SubmittedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	resp := feedback.ToResponse(created)
	return &resp, nil
}

// GetByBooking implements feedback.Service. Staff can read any booking's
// feedback; clients only their own.
func (s *FeedbackServiceImpl) GetByBooking(ctx context.Context, bookingID string) ([]feedback.Response, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	role, _ := claims["role"].(string)
	if role == string(user.RoleClient) {
		clientID, _ := claims["user_id"].(string)
		if b.ClientID != clientID {
			return nil, feedback.ErrBookingNotYours
		}
	}

	entries, err := s.Repository.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return toResponses(entries), nil
}

// ListMine implements feedback.Service.
func (s *FeedbackServiceImpl) ListMine(ctx context.Context) ([]feedback.Response, error) {
	clientID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.Repository.ListByClient(ctx, clientID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return toResponses(entries), nil
}

// ListByEmployee implements feedback.Service.
func (s *FeedbackServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]feedback.Response, error) {
	entries, err := s.Repository.ListByEmployee(ctx, employeeID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return toResponses(entries), nil
}

// ListByService implements feedback.Service.
func (s *FeedbackServiceImpl) ListByService(ctx context.Context, serviceID string) ([]feedback.Response, error) {
	entries, err := s.Repository.ListByService(ctx, serviceID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return toResponses(entries), nil
}

// EmployeeSummary implements feedback.Service.
func (s *FeedbackServiceImpl) EmployeeSummary(ctx context.Context, employeeID string) (*feedback.Summary, error) {
	return s.Repository.SummaryByEmployee(ctx, employeeID)
}

// ServiceSummary implements feedback.Service.
func (s *FeedbackServiceImpl) ServiceSummary(ctx context.Context, serviceID string) (*feedback.Summary, error) {
	return s.Repository.SummaryByService(ctx, serviceID)
}

func toResponses(entries []feedback.Feedback) []feedback.Response {
	responses := make([]feedback.Response, 0, len(entries))
	for i := range entries {
		responses = append(responses, feedback.ToResponse(&entries[i]))
	}
	return responses
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
