package service

import "errors"

// Sentinel errors surfaced to handlers, which map them to HTTP codes.
var (
	ErrCakeNotFound     = errors.New("cake not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidOrderItem = errors.New("invalid order item")
	ErrEmptyOrder       = errors.New("order has no valid items")
	ErrStatusInvalid    = errors.New("status must be a non-empty string")
	ErrSlugExists       = errors.New("slug already exists")
)
