package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the access-control taxonomy. ErrAuthRequired means the
// caller presented no valid identity at all; ErrPermissionDenied means the
// identity is valid but not allowed to perform the operation. The HTTP
// boundary maps them to 401 and 403 respectively.
var (
	ErrAuthRequired     = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")
)

// AuthRequiredError indicates that no valid authenticated actor was supplied.
type AuthRequiredError struct {
	Cause error
}

// NewAuthRequiredError creates an AuthRequiredError without a cause.
func NewAuthRequiredError() *AuthRequiredError {
	return &AuthRequiredError{}
}

// NewAuthRequiredErrorWithCause creates an AuthRequiredError wrapping the
// credential failure that triggered it.
func NewAuthRequiredErrorWithCause(cause error) *AuthRequiredError {
	return &AuthRequiredError{Cause: cause}
}

func (e *AuthRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrAuthRequired, sanitize(e.Cause.Error()))
	}
	return ErrAuthRequired.Error()
}

func (e *AuthRequiredError) Unwrap() error {
	return ErrAuthRequired
}

// PermissionDeniedError indicates that an authenticated actor attempted an
// operation the access policy does not permit.
type PermissionDeniedError struct {
	Action string
	Cause  error
}

// NewPermissionDeniedError creates a PermissionDeniedError for the named action.
func NewPermissionDeniedError(action string) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action}
}

// NewPermissionDeniedErrorWithCause creates a PermissionDeniedError wrapping
// the underlying cause.
func NewPermissionDeniedErrorWithCause(action string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{Action: action, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPermissionDenied, e.Action, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
