package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/catalog"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/giftcard"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/membership"
)

// Helper functions for pointer types
func strPtr(s string) *string {
	return &s
}

// GetDefaultCategories returns the standard booking menu categories seeded
// into a fresh install.
func GetDefaultCategories() []catalog.Category {
	return []catalog.Category{
		{Name: "facial", DisplayName: "Facial"},
		{Name: "massage", DisplayName: "Massage"},
		{Name: "body-treatment", DisplayName: "Body Treatment"},
		{Name: "nail-care", DisplayName: "Nail Care"},
		{Name: "hair-care", DisplayName: "Hair Care"},
		{Name: "aromatherapy", DisplayName: "Aromatherapy"},
		{Name: "wellness", DisplayName: "Wellness"},
		{Name: "package", DisplayName: "Package"},
	}
}

// DefaultService pairs a seed service with the category slug it belongs to,
// resolved to a category ID at seed time.
type DefaultService struct {
	CategoryName string
	Service      catalog.Service
}

// GetDefaultServices returns the starter treatment menu. Prices are in AED.
func GetDefaultServices() []DefaultService {
	return []DefaultService{
		{
			CategoryName: "massage",
			Service: catalog.Service{
				Name:            "Relaxing Massage",
				Description:     strPtr("Indulge in a blissful escape with a relaxing massage. Feel tension melt away as skilled therapists work their magic on your tired muscles."),
				DurationMinutes: 60,
				Price:           decimal.NewFromInt(410),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "massage",
			Service: catalog.Service{
				Name:            "Swedish Massage",
				Description:     strPtr("Experience the therapeutic benefits of Swedish massage techniques designed to promote relaxation and improve overall well-being."),
				DurationMinutes: 60,
				Price:           decimal.NewFromInt(410),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "massage",
			Service: catalog.Service{
				Name:            "Deep Tissue Massage",
				Description:     strPtr("Intensive massage targeting deep muscle layers for ultimate relief from chronic pain and muscle tension."),
				DurationMinutes: 60,
				Price:           decimal.NewFromInt(450),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "body-treatment",
			Service: catalog.Service{
				Name:            "Turkish Bath",
				Description:     strPtr("Traditional Turkish bath experience with steam and exfoliation for deep cleansing and relaxation."),
				DurationMinutes: 45,
				Price:           decimal.NewFromInt(350),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "facial",
			Service: catalog.Service{
				Name:            "Hydrating Facial",
				Description:     strPtr("Rejuvenating facial treatment for glowing, hydrated skin using premium skincare products."),
				DurationMinutes: 60,
				Price:           decimal.NewFromInt(380),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "nail-care",
			Service: catalog.Service{
				Name:            "Classic Manicure",
				Description:     strPtr("Professional nail care service including shaping, cuticle care, and polish application."),
				DurationMinutes: 30,
				Price:           decimal.NewFromInt(120),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "aromatherapy",
			Service: catalog.Service{
				Name:            "Aromatherapy Session",
				Description:     strPtr("Therapeutic session using essential oils to promote physical and emotional well-being."),
				DurationMinutes: 45,
				Price:           decimal.NewFromInt(280),
				Currency:        "AED",
				IsActive:        true,
			},
		},
		{
			CategoryName: "package",
			Service: catalog.Service{
				Name:            "Wellness Package",
				Description:     strPtr("Comprehensive wellness package including massage, facial, and aromatherapy for complete rejuvenation."),
				DurationMinutes: 120,
				Price:           decimal.NewFromInt(850),
				Currency:        "AED",
				IsActive:        true,
			},
		},
	}
}

// GetDefaultGiftCardTemplates returns the purchasable gift card denominations.
// Expiry on the template is informational; a purchased card gets its own
// expiry from ValidityMonths at purchase time.
func GetDefaultGiftCardTemplates(now time.Time) []giftcard.GiftCard {
	templates := []struct {
		name        string
		description string
		value       int64
		price       int64
	}{
		{"Spa Gift Card AED 200", "Treat someone to a relaxing spa experience.", 200, 200},
		{"Spa Gift Card AED 500", "A generous gift covering a full treatment session.", 500, 500},
		{"Spa Gift Card AED 1000", "The complete spa indulgence package for someone special.", 1000, 950},
	}

	cards := make([]giftcard.GiftCard, 0, len(templates))
	for _, t := range templates {
		value := decimal.NewFromInt(t.value)
		cards = append(cards, giftcard.GiftCard{
			Name:           t.name,
			Description:    strPtr(t.description),
			Value:          value,
			Price:          decimal.NewFromInt(t.price),
			Currency:       "AED",
			Status:         giftcard.StatusActive,
			RemainingValue: value,
			ValidityMonths: 12,
			ExpiryDate:     now.AddDate(0, 12, 0),
			IsActive:       true,
			IsTemplate:     true,
		})
	}
	return cards
}

// GetDefaultMembershipPlans returns the sellable membership plans.
func GetDefaultMembershipPlans() []membership.Membership {
	return []membership.Membership{
		{
			Name:             "Monthly Relaxation",
			Description:      "Four massage or facial sessions every month.",
			ServiceType:      membership.TypeLimited,
			SelectedServices: []membership.SelectedService{},
			NumberOfSessions: 4,
			PaymentType:      membership.PaymentRecurring,
			Price:            decimal.NewFromInt(1200),
			Currency:         "AED",
			ValidityPeriod:   1,
			ValidityUnit:     membership.UnitMonths,
			Status:           membership.StatusDraft,
			IsActive:         true,
			IsTemplate:       true,
		},
		{
			Name:             "Wellness Quarterly",
			Description:      "Twelve sessions across any treatment over three months.",
			ServiceType:      membership.TypeLimited,
			SelectedServices: []membership.SelectedService{},
			NumberOfSessions: 12,
			PaymentType:      membership.PaymentOneTime,
			Price:            decimal.NewFromInt(3200),
			Currency:         "AED",
			ValidityPeriod:   3,
			ValidityUnit:     membership.UnitMonths,
			Status:           membership.StatusDraft,
			IsActive:         true,
			IsTemplate:       true,
		},
		{
			Name:             "Unlimited Annual",
			Description:      "Unlimited access to all standard treatments for a year.",
			ServiceType:      membership.TypeUnlimited,
			SelectedServices: []membership.SelectedService{},
			PaymentType:      membership.PaymentOneTime,
			Price:            decimal.NewFromInt(18000),
			Currency:         "AED",
			ValidityPeriod:   1,
			ValidityUnit:     membership.UnitYears,
			Status:           membership.StatusDraft,
			IsActive:         true,
			IsTemplate:       true,
		},
	}
}
