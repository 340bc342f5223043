package backend

import (
	"fmt"
	"net/http"

	apperrors "github.com/shopfront/storefront/internal/errors"
)

// APIError is a rejection from the backend: either a non-2xx status or a
// 2xx response with success:false in the envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// Unwrap maps the error onto the application sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	default:
		return apperrors.ErrBackendRejected
	}
}
