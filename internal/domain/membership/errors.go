package membership

import "errors"

// Membership domain errors
var (
	ErrNotFound          = errors.New("membership not found")
	ErrTemplateNotFound  = errors.New("membership plan not found")
	ErrNotActive         = errors.New("membership is not active")
	ErrMembershipExpired = errors.New("membership has expired")
	ErrSessionsExhausted = errors.New("no sessions remaining on this membership")
	ErrServiceNotCovered = errors.New("service is not covered by this membership")
)
