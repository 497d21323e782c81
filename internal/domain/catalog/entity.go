package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups services on the booking menu. Name is the unique slug,
// DisplayName what clients see.
type Category struct {
	ID          string
	Name        string
	DisplayName string
	CreatedAt   time.Time
}

// Service is a bookable treatment.
type Service struct {
	ID              string
	CategoryID      string
	Name            string
	Description     *string
	DurationMinutes int
	Price           decimal.Decimal
	Currency        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	CategoryName string
}
