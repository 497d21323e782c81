package giftcard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/email"
)

const defaultValidityMonths = 12

type GiftCardServiceImpl struct {
	db *database.DB
	giftcard.Repository
	emailService email.EmailService
}

func NewGiftCardService(
	db *database.DB,
	giftCardRepo giftcard.Repository,
	emailService email.EmailService,
) giftcard.Service {
	return &GiftCardServiceImpl{
		db:           db,
		Repository:   giftCardRepo,
		emailService: emailService,
	}
}

// CreateTemplate implements giftcard.Service.
func (s *GiftCardServiceImpl) CreateTemplate(ctx context.Context, req giftcard.CreateTemplateRequest) (*giftcard.Response, error) {
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

	now := time.Now().UTC()
	value := decimal.NewFromFloat(req.Value)
	template := &giftcard.GiftCard{
		Name:           req.Name,
		Description:    req.Description,
		Value:          value,
		Price:          decimal.NewFromFloat(req.Price),
		Currency:       currency,
		Status:         giftcard.StatusActive,
		RemainingValue: value,
		ValidityMonths: req.ValidityMonths,
		ExpiryDate:     now.AddDate(0, req.ValidityMonths, 0),
		IsActive:       true,
		IsTemplate:     true,
		CreatedBy:      &userID,
		UsageHistory:   []giftcard.Usage{},
	}

	created, err := s.Repository.Create(ctx, template)
	if err != nil {
		return nil, fmt.Errorf("failed to create gift card template: %w", err)
	}

	resp := giftcard.ToResponse(created)
	return &resp, nil
}

// UpdateTemplate implements giftcard.Service. Purchased cards keep the
// validity they were sold with; only the template changes.
func (s *GiftCardServiceImpl) UpdateTemplate(ctx context.Context, id string, req giftcard.UpdateTemplateRequest) (*giftcard.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	template, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !template.IsTemplate {
		return nil, giftcard.ErrTemplateNotFound
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = req.Description
	}
	if req.Value != nil {
		template.Value = decimal.NewFromFloat(*req.Value)
		template.RemainingValue = template.Value
	}
	if req.Price != nil {
		template.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.ValidityMonths != nil {
		template.ValidityMonths = *req.ValidityMonths
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := s.Repository.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update gift card template: %w", err)
	}

	resp := giftcard.ToResponse(template)
	return &resp, nil
}

// ListTemplates implements giftcard.Service.
func (s *GiftCardServiceImpl) ListTemplates(ctx context.Context) ([]giftcard.Response, error) {
	templates, err := s.Repository.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gift card templates: %w", err)
	}

	responses := make([]giftcard.Response, 0, len(templates))
	for i := range templates {
		responses = append(responses, giftcard.ToResponse(&templates[i]))
	}
	return responses, nil
}

// Purchase implements giftcard.Service. The expiry clock starts at purchase
// time, using the template's validity.
func (s *GiftCardServiceImpl) Purchase(ctx context.Context, req giftcard.PurchaseRequest) (*giftcard.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	template, err := s.Repository.GetByID(ctx, req.TemplateID)
	if err != nil {
		return nil, giftcard.ErrTemplateNotFound
	}
	if !template.IsTemplate {
		return nil, giftcard.ErrTemplateNotFound
	}

	validityMonths := template.ValidityMonths
	if validityMonths < 1 {
		validityMonths = defaultValidityMonths
	}

	now := time.Now().UTC()
	card := &giftcard.GiftCard{
		Name:            template.Name,
		Description:     template.Description,
		Value:           template.Value,
		Price:           template.Price,
		Currency:        template.Currency,
		Code:            giftcard.GenerateCode(now),
		Status:          giftcard.StatusActive,
		RemainingValue:  template.Value,
		PurchasedBy:     &userID,
		PurchaseDate:    &now,
		PurchasePrice:   template.Price,
		RecipientName:   req.RecipientName,
		RecipientEmail:  req.RecipientEmail,
		RecipientPhone:  req.RecipientPhone,
		PersonalMessage: req.PersonalMessage,
		ValidityMonths:  validityMonths,
		ExpiryDate:      now.AddDate(0, validityMonths, 0),
		IsActive:        true,
		IsTemplate:      false,
		CreatedBy:       &userID,
		UsageHistory:    []giftcard.Usage{},
	}

	created, err := s.Repository.Create(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to purchase gift card: %w", err)
	}

	if req.RecipientEmail != nil {
		recipientName := ""
		if req.RecipientName != nil {
			recipientName = *req.RecipientName
		}
		message := ""
		if req.PersonalMessage != nil {
			message = *req.PersonalMessage
		}
		go s.emailService.SendGiftCardReceipt(
			*req.RecipientEmail,
			recipientName,
			created.Code,
			created.Value.StringFixed(2)+" "+created.Currency,
			created.ExpiryDate.Format("2 January 2006"),
			message,
		)
	}

	resp := giftcard.ToResponse(created)
	return &resp, nil
}

// GetByCode implements giftcard.Service.
func (s *GiftCardServiceImpl) GetByCode(ctx context.Context, code string) (*giftcard.Response, error) {
	card, err := s.Repository.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	resp := giftcard.ToResponse(card)
	return &resp, nil
}

// ValidateCard implements giftcard.Service.
func (s *GiftCardServiceImpl) ValidateCard(ctx context.Context, code string) (*giftcard.ValidationResult, error) {
	card, err := s.Repository.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	reasons := card.ValidateForUse(time.Now().UTC())
	return &giftcard.ValidationResult{
		IsValid:        len(reasons) == 0,
		Errors:         reasons,
		RemainingValue: card.RemainingValue,
	}, nil
}

// Redeem implements giftcard.Service.
func (s *GiftCardServiceImpl) Redeem(ctx context.Context, req giftcard.RedeemRequest) (*giftcard.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	card, err := s.Repository.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}

	amount := decimal.NewFromFloat(req.Amount)
	if err := card.Redeem(amount, userID, req.BookingID, req.Notes, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.Repository.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update gift card: %w", err)
	}

	resp := giftcard.ToResponse(card)
	return &resp, nil
}

// ListMine implements giftcard.Service.
func (s *GiftCardServiceImpl) ListMine(ctx context.Context) ([]giftcard.Response, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.Repository.ListByPurchaser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gift cards: %w", err)
	}

	responses := make([]giftcard.Response, 0, len(cards))
	for i := range cards {
		responses = append(responses, giftcard.ToResponse(&cards[i]))
	}
	return responses, nil
}

// Cancel implements giftcard.Service.
func (s *GiftCardServiceImpl) Cancel(ctx context.Context, id string) error {
	card, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	card.Status = giftcard.StatusCancelled
	card.IsActive = false

	return s.Repository.Update(ctx, card)
}

// Stats implements giftcard.Service.
func (s *GiftCardServiceImpl) Stats(ctx context.Context) (*giftcard.StatsResponse, error) {
	return s.Repository.Stats(ctx)
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
