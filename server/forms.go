package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signupForm struct {
	Name            string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Address         string `validate:"omitempty,max=500"`
}

type checkoutForm struct {
	FullName string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,min=7"`
	Address  string `validate:"required"`
	City     string `validate:"required"`
	State    string `validate:"required"`
	ZipCode  string `validate:"required"`
}

// formError maps a validation failure onto a user-facing message for the
// first offending field.
func formError(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Please check the form and try again."
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Please provide a valid email address."
	case "min":
		return fe.Field() + " is too short."
	case "max":
		return fe.Field() + " is too long."
	case "eqfield":
		return "Passwords do not match."
	default:
		return "Please check the form and try again."
	}
}

func parseLoginForm(r *http.Request) (loginForm, error) {
	form := loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	return form, validate.Struct(form)
}

func parseSignupForm(r *http.Request) (signupForm, error) {
	form := signupForm{
		Name:            r.FormValue("name"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		Address:         r.FormValue("address"),
	}
	return form, validate.Struct(form)
}

func parseCheckoutForm(r *http.Request) (checkoutForm, error) {
	form := checkoutForm{
		FullName: r.FormValue("full_name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Address:  r.FormValue("address"),
		City:     r.FormValue("city"),
		State:    r.FormValue("state"),
		ZipCode:  r.FormValue("zip_code"),
	}
	return form, validate.Struct(form)
}
