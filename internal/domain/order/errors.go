package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrderItems  = errors.New("items must not be empty")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidStatus    = errors.New("status must not be empty")
	ErrMissingOrigin    = errors.New("origin header is required")
	ErrInvalidSignature = errors.New("invalid payment signature")
)
