package giftcard

import "errors"

// Gift card domain errors
var (
	ErrNotFound            = errors.New("gift card not found")
	ErrTemplateNotFound    = errors.New("gift card template not found")
	ErrExpired             = errors.New("gift card has expired")
	ErrInsufficientBalance = errors.New("insufficient gift card balance")
	ErrNotAvailable        = errors.New("gift card is not available for use")
	ErrCodeExists          = errors.New("gift card code already exists")
)
