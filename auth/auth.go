// Package auth validates the board's mock login and registration forms.
// Nothing is sent anywhere; a successful submission only changes UI state.
package auth

import (
	"errors"
	"strings"
)

// MinPasswordLen is the shortest password registration accepts.
const MinPasswordLen = 8

var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// Credentials is the login form.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	if blank(c.Email) || c.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// Registration is the sign-up form.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// Validate applies the checks in order: presence, match, length.
func (r Registration) Validate() error {
	if blank(r.Name) || blank(r.Email) || r.Password == "" || r.ConfirmPassword == "" || blank(r.Phone) {
		return ErrMissingFields
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len([]rune(r.Password)) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// Credentials returns the login form pre-filled from a registration.
func (r Registration) Credentials() Credentials {
	return Credentials{Email: strings.TrimSpace(r.Email), Password: r.Password}
}

// Session is the signed-in state.
type Session struct {
	Email string
}

// SignedIn reports whether s represents a logged-in user.
func (s Session) SignedIn() bool { return s.Email != "" }

// Message is the user-facing text for a validation error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all fields"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrPasswordTooShort):
		return "Password must be at least 8 characters"
	case err == nil:
		return ""
	}
	return err.Error()
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
