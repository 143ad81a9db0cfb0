package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input validation errors raised before any request is sent.
	ErrValidation = errors.New("validation error")
)
