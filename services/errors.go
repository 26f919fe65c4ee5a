package services

import "errors"

// Controllers translate these with errors.Is: validation errors become 400,
// ErrOrderNotFound becomes 404 (absent, not owned and not mutable all look
// the same on purpose), credential errors become 401.
var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
