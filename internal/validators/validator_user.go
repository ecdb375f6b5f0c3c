package validators

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/cinetrack/models"
)

const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRefreshToken = "refresh_token"
)

// UserValidator checks account requests: signup, login and token refresh.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RefreshRequest:
		return v.validateRefresh(value, fields...)
	case *models.RefreshRequest:
		return v.validateRefresh(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldName:     func() error { return requireNonBlank(req.Name, ErrEmptyName) },
		FieldEmail:    func() error { return validateEmail(req.Email) },
		FieldPassword: func() error { return validatePassword(req.Password) },
	}
	return runChecks(checks, []string{FieldName, FieldEmail, FieldPassword}, fields)
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldEmail:    func() error { return requireNonBlank(req.Email, ErrEmptyEmail) },
		FieldPassword: func() error { return validatePassword(req.Password) },
	}
	return runChecks(checks, []string{FieldEmail, FieldPassword}, fields)
}

func (v *UserValidator) validateRefresh(req models.RefreshRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldRefreshToken: func() error { return requireNonBlank(req.RefreshToken, ErrEmptyRefreshToken) },
	}
	return runChecks(checks, []string{FieldRefreshToken}, fields)
}

// validateEmail accepts a bare address only: "Ann <ann@example.com>" parses
// as a valid RFC 5322 address but is not an email a user types at signup.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func requireNonBlank(value string, err error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}

// runChecks runs the checks named in fields, or every check in order when
// fields is empty, and returns the first failure.
func runChecks(checks map[string]func() error, order []string, fields []string) error {
	selected := order
	if len(fields) > 0 {
		for _, f := range fields {
			if _, ok := checks[f]; !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		selected = slices.DeleteFunc(slices.Clone(order), func(f string) bool {
			return !slices.Contains(fields, f)
		})
	}

	for _, name := range selected {
		if err := checks[name](); err != nil {
			return err
		}
	}
	return nil
}
