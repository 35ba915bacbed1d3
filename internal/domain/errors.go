package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidOTP   = errors.New("invalid otp")
	ErrExpiredOTP   = errors.New("otp expired")
	ErrNotification = errors.New("notification failed")
)
