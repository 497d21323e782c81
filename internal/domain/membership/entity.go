package membership

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service types
const (
	TypeLimited   = "Limited"
	TypeUnlimited = "Unlimited"
)

// Payment types
const (
	PaymentOneTime   = "One-time"
	PaymentRecurring = "Recurring"
)

// Membership statuses
const (
	StatusDraft     = "Draft"
	StatusActive    = "Active"
	StatusUsed      = "Used"
	StatusExpired   = "Expired"
	StatusCancelled = "Cancelled"
)

// Validity units
const (
	UnitDays   = "days"
	UnitMonths = "months"
	UnitYears  = "years"
)

var ValidityUnits = []string{UnitDays, UnitMonths, UnitYears}

// SelectedService links a membership to a redeemable service.
type SelectedService struct {
	ServiceID       string `json:"serviceId"`
	Name            string `json:"name"`
	SessionsAllowed int    `json:"sessionsAllowed"`
}

// Membership is either a sellable plan (IsTemplate) or a client's purchased
// instance with usage tracking.
type Membership struct {
	ID               string
	Name             string
	Description      string
	ServiceType      string
	SelectedServices []SelectedService
	NumberOfSessions int
	PaymentType      string
	Price            decimal.Decimal
	Currency         string
	ValidityPeriod   int
	ValidityUnit     string
	ClientID         *string
	Status           string
	StartDate        time.Time
	EndDate          *time.Time
	PurchaseDate     *time.Time
	SessionsUsed     int
	LastUsedDate     *time.Time
	IsActive         bool
	IsTemplate       bool
	CreatedBy        *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ComputeEndDate adds the validity period onto start.
func ComputeEndDate(start time.Time, period int, unit string) time.Time {
	switch unit {
	case UnitDays:
		return start.AddDate(0, 0, period)
	case UnitMonths:
		return start.AddDate(0, period, 0)
	case UnitYears:
		return start.AddDate(period, 0, 0)
	}
	return start
}

// IsExpired reports whether the membership is past its end date.
func (m *Membership) IsExpired(now time.Time) bool {
	return m.EndDate != nil && now.After(*m.EndDate)
}

// RemainingSessions returns sessions left, or nil for unlimited plans.
func (m *Membership) RemainingSessions() *int {
	if m.ServiceType == TypeUnlimited {
		return nil
	}
	remaining := m.NumberOfSessions - m.SessionsUsed
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// SessionsExhausted reports whether a limited plan has no sessions left.
func (m *Membership) SessionsExhausted() bool {
	if m.ServiceType == TypeUnlimited {
		return false
	}
	return m.SessionsUsed >= m.NumberOfSessions
}

// UseSession consumes one session. Unlimited plans only update the last-used
// timestamp.
func (m *Membership) UseSession(now time.Time) error {
	if m.Status != StatusActive {
		return ErrNotActive
	}
	if m.IsExpired(now) {
		return ErrMembershipExpired
	}
	if m.SessionsExhausted() {
		return ErrSessionsExhausted
	}

	if m.ServiceType == TypeLimited {
		m.SessionsUsed++
		if m.SessionsExhausted() {
			m.Status = StatusUsed
		}
	}
	m.LastUsedDate = &now
	return nil
}

// DaysRemaining counts whole days until the end date, never negative.
func (m *Membership) DaysRemaining(now time.Time) *int {
	if m.EndDate == nil {
		return nil
	}
	days := int(m.EndDate.Sub(now).Hours() / 24)
	if m.EndDate.Sub(now) > time.Duration(days)*24*time.Hour {
		days++
	}
	if days < 0 {
		days = 0
	}
	return &days
}
