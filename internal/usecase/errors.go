package usecase

import "errors"

var (
	// ErrNotFound marks operations that targeted a missing primary key.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks input rejected before it reached the store.
	ErrValidation = errors.New("validation failed")
)
