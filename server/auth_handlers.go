package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/shopfront/storefront/backend"
	"github.com/shopfront/storefront/guard"
	apperrors "github.com/shopfront/storefront/internal/errors"
	"github.com/shopfront/storefront/internal/utils"
	"github.com/shopfront/storefront/session"
)

// LoginPageHandler displays the sign-in page (GET /). The guard has already
// bounced authenticated visitors to their role landing before this runs.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, "Sign In", "login_content.html", map[string]interface{}{
			"Error": r.URL.Query().Get("error"),
			"Email": r.URL.Query().Get("email"),
		})
	}
}

// LoginSubmissionHandler processes the login form (POST /auth/login).
// On success it commits both session projections in one response and
// redirects to the role landing.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form, err := parseLoginForm(r)
		if err != nil {
			s.redirectLoginError(w, r, formError(err), form.Email)
			return
		}

		result, err := s.api.Login(r.Context(), backend.Credentials{
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			s.redirectLoginError(w, r, loginErrorMessage(err), form.Email)
			return
		}

		role := session.ParseRole(result.User.Role)
		s.store.Commit(w, session.Session{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			Role:         role,
			Profile:      utils.Ptr(result.User),
		})

		redirectSuccess(w, r, guard.RoleLanding(role))
	}
}

// SignupPageHandler renders the registration page (GET /signup)
func (s *Server) SignupPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, "Create Account", "signup_content.html", map[string]interface{}{
			"Error": r.URL.Query().Get("error"),
		})
	}
}

// SignupSubmissionHandler handles registration form submission
// (POST /auth/signup). New accounts are always customers; the admin console
// is the only place where other roles can be assigned.
func (s *Server) SignupSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form, err := parseSignupForm(r)
		if err != nil {
			redirectSuccess(w, r, RouteSignup+"?error="+url.QueryEscape(formError(err)))
			return
		}

		err = s.api.Register(r.Context(), backend.RegisterInput{
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
			Role:     string(session.RoleCustomer),
			Address:  form.Address,
		})
		if err != nil {
			log.Err(err).Msg("registration failed")
			redirectSuccess(w, r, RouteSignup+"?error="+url.QueryEscape(loginErrorMessage(err)))
			return
		}

		// Registration does not log the visitor in; back to the sign-in page.
		redirectSuccess(w, r, RouteHome)
	}
}

// LogoutHandler clears both session projections and returns to the sign-in
// page (GET /auth/logout). Safe to hit while already logged out.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.store.Clear(w)
		redirectSuccess(w, r, RouteHome)
	}
}

func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request, message, email string) {
	target := RouteHome + "?error=" + url.QueryEscape(message)
	if email != "" {
		target += "&email=" + url.QueryEscape(email)
	}
	redirectSuccess(w, r, target)
}

// loginErrorMessage mirrors the backend's status codes onto the messages the
// sign-in page shows.
func loginErrorMessage(err error) string {
	if apperrors.Is(err, apperrors.ErrBackendUnreachable) {
		return "Network error. Please check your connection and try again."
	}
	var apiErr *backend.APIError
	if !apperrors.As(err, &apiErr) {
		return "An unexpected error occurred. Please try again."
	}
	switch apiErr.Status {
	case http.StatusBadRequest:
		if apiErr.Message != "" && apiErr.Message != "request failed" {
			return apiErr.Message
		}
		return "Invalid request. Please check your email and password format."
	case http.StatusUnauthorized:
		return "Invalid email or password. Please try again."
	case http.StatusNotFound:
		return "User not found. Please check your email or sign up."
	case http.StatusUnprocessableEntity:
		return "Please provide valid email and password."
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
