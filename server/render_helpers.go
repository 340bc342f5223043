package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/shopfront/storefront/backend"
	apperrors "github.com/shopfront/storefront/internal/errors"
)

// renderBackendError translates a backend failure into the page-level error
// policy: a 401 clears both session projections and silently redirects to
// login; anything else renders a dismissible error view with a manual retry
// link. Never retried automatically.
func (s *Server) renderBackendError(w http.ResponseWriter, r *http.Request, err error, retryPath string) {
	if apperrors.Is(err, apperrors.ErrUnauthorized) {
		s.store.Clear(w)
		http.Redirect(w, r, RouteHome, http.StatusSeeOther)
		return
	}

	log.Err(err).Str("path", r.URL.Path).Msg("backend request failed")

	message := "Something went wrong. Please try again."
	if apperrors.Is(err, apperrors.ErrBackendUnreachable) {
		message = "Network error. Please check your connection and try again."
	} else if apiErr := (&backend.APIError{}); apperrors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}

	s.renderPage(w, r, "Error", "error_content.html", map[string]interface{}{
		"Error":     message,
		"RetryPath": retryPath,
	})
}

// recoverable reports whether the handler should degrade to an empty
// collection instead of surfacing the error.
func recoverable(err error) bool {
	return apperrors.Is(err, apperrors.ErrMalformedResponse)
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
