package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel error for order status machine
// violations, such as finalizing an already closed order.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError indicates a forbidden status machine transition.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// attempted transition.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
