package biderrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrNotFound  = errors.New("entity not found")
	ErrTransport = errors.New("store request failed")
)

// Business rule errors
var (
	ErrValidation   = errors.New("invalid input")
	ErrPermission   = errors.New("actor not authorized for this entity")
	ErrInvalidState = errors.New("operation not valid for current status")
	ErrDuplicateBid = errors.New("contractor already has an active bid on this project")

	// ErrAlreadyAwarded wraps ErrInvalidState so generic invalid-state checks
	// still match, while award callers can react to the specific condition.
	// The message keeps the "already been awarded" wording clients match on.
	ErrAlreadyAwarded = fmt.Errorf("%w: this project has already been awarded", ErrInvalidState)
)
