package http

import (
	"errors"
	"net/http"

	"pizzaria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusForError maps the error taxonomy onto HTTP status codes. Anything
// outside the taxonomy is a system failure and reported as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error payload for the given failure. Internal
// failure details are not leaked to clients.
func respondError(ctx echo.Context, err error) error {
	code := statusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
