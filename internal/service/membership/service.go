package membership

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
)

type MembershipServiceImpl struct {
	db *database.DB
	membership.Repository
}

func NewMembershipService(
	db *database.DB,
	membershipRepo membership.Repository,
) membership.Service {
	return &MembershipServiceImpl{
		db:         db,
		Repository: membershipRepo,
	}
}

// CreatePlan implements membership.Service.
func (s *MembershipServiceImpl) CreatePlan(ctx context.Context, req membership.CreatePlanRequest) (*membership.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "AED"
	}

	selected := req.SelectedServices
	if selected == nil {
		selected = []membership.SelectedService{}
	}

	plan := &membership.Membership{
		Name:             req.Name,
		Description:      req.Description,
		ServiceType:      req.ServiceType,
		SelectedServices: selected,
		NumberOfSessions: req.NumberOfSessions,
		PaymentType:      req.PaymentType,
		Price:            decimal.NewFromFloat(req.Price),
		Currency:         currency,
		ValidityPeriod:   req.ValidityPeriod,
		ValidityUnit:     req.ValidityUnit,
		Status:           membership.StatusDraft,
		StartDate:        time.Now().UTC(),
		IsActive:         true,
		IsTemplate:       true,
		CreatedBy:        &userID,
		Notes:            req.Notes,
	}

	created, err := s.Repository.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create membership plan: %w", err)
	}

	resp := membership.ToResponse(created, time.Now().UTC())
	return &resp, nil
}

// ListPlans implements membership.Service.
func (s *MembershipServiceImpl) ListPlans(ctx context.Context) ([]membership.Response, error) {
	plans, err := s.Repository.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list membership plans: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]membership.Response, 0, len(plans))
	for i := range plans {
		responses = append(responses, membership.ToResponse(&plans[i], now))
	}
	return responses, nil
}

// Purchase implements membership.Service. The purchased instance starts now
// and ends after the plan's validity period.
func (s *MembershipServiceImpl) Purchase(ctx context.Context, req membership.PurchaseRequest) (*membership.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.Repository.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, membership.ErrTemplateNotFound
	}
	if !plan.IsTemplate {
		return nil, membership.ErrTemplateNotFound
	}

	now := time.Now().UTC()
	endDate := membership.ComputeEndDate(now, plan.ValidityPeriod, plan.ValidityUnit)

	instance := &membership.Membership{
		Name:             plan.Name,
		Description:      plan.Description,
		ServiceType:      plan.ServiceType,
		SelectedServices: plan.SelectedServices,
		NumberOfSessions: plan.NumberOfSessions,
		PaymentType:      plan.PaymentType,
		Price:            plan.Price,
		Currency:         plan.Currency,
		ValidityPeriod:   plan.ValidityPeriod,
		ValidityUnit:     plan.ValidityUnit,
		ClientID:         &userID,
		Status:           membership.StatusActive,
		StartDate:        now,
		EndDate:          &endDate,
		PurchaseDate:     &now,
		IsActive:         true,
		IsTemplate:       false,
		CreatedBy:        &userID,
	}

	created, err := s.Repository.Create(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase membership: %w", err)
	}

	resp := membership.ToResponse(created, now)
	return &resp, nil
}

// ListMine implements membership.Service.
func (s *MembershipServiceImpl) ListMine(ctx context.Context) ([]membership.Response, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := s.Repository.ListByClient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]membership.Response, 0, len(memberships))
	for i := range memberships {
		responses = append(responses, membership.ToResponse(&memberships[i], now))
	}
	return responses, nil
}

// GetByID implements membership.Service.
func (s *MembershipServiceImpl) GetByID(ctx context.Context, id string) (*membership.Response, error) {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := membership.ToResponse(found, time.Now().UTC())
	return &resp, nil
}

// UseSession implements membership.Service. Limited plans must cover the
// requested service.
func (s *MembershipServiceImpl) UseSession(ctx context.Context, req membership.UseSessionRequest) (*membership.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := s.Repository.GetByID(ctx, req.MembershipID)
	if err != nil {
		return nil, err
	}

	if found.ServiceType == membership.TypeLimited && len(found.SelectedServices) > 0 {
		covered := false
		for _, svc := range found.SelectedServices {
			if svc.ServiceID == req.ServiceID {
				covered = true
				break
			}
		}
		if !covered {
			return nil, membership.ErrServiceNotCovered
		}
	}

	now := time.Now().UTC()
	if err := found.UseSession(now); err != nil {
		return nil, err
	}

	if err := s.Repository.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	resp := membership.ToResponse(found, now)
	return &resp, nil
}

// Cancel implements membership.Service.
func (s *MembershipServiceImpl) Cancel(ctx context.Context, id string) error {
	found, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	found.Status = membership.StatusCancelled
	found.IsActive = false

	return s.Repository.Update(ctx, found)
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
