package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrValidation            = errors.New("validation failed")
	ErrDuplicateContribution = errors.New("duplicate contribution")
	ErrConflict              = errors.New("conflict")
)

// Conflict details. Callers branch on the specific kind or on ErrConflict.
var (
	ErrFullyFunded      = fmt.Errorf("%w: item is already fully funded", ErrConflict)
	ErrAlreadyFunded    = fmt.Errorf("%w: item already has contributions", ErrConflict)
	ErrExceedsRemaining = fmt.Errorf("%w: amount exceeds remaining", ErrConflict)
	ErrCannotWithdraw   = fmt.Errorf("%w: cannot withdraw from a fully funded item", ErrConflict)
)
