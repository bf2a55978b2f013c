package auth

import (
	"errors"
	"testing"
)

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Credentials
		want error
	}{
		{"ok", Credentials{"ana@example.com", "secret"}, nil},
		{"no email", Credentials{"  ", "secret"}, ErrMissingFields},
		{"no password", Credentials{"ana@example.com", ""}, ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.c.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistrationValidate(t *testing.T) {
	good := Registration{
		Name:            "Ana",
		Email:           "ana@example.com",
		Password:        "correcthorse",
		ConfirmPassword: "correcthorse",
		Phone:           "+55 11 99999-0000",
	}
	tests := []struct {
		name string
		edit func(r *Registration)
		want error
	}{
		{"ok", func(*Registration) {}, nil},
		{"missing phone", func(r *Registration) { r.Phone = "" }, ErrMissingFields},
		{"missing confirm", func(r *Registration) { r.ConfirmPassword = "" }, ErrMissingFields},
		{"mismatch", func(r *Registration) { r.ConfirmPassword = "correcthorse!" }, ErrPasswordMismatch},
		{"short", func(r *Registration) { r.Password, r.ConfirmPassword = "abc1234", "abc1234" }, ErrPasswordTooShort},
		{"mismatch before length", func(r *Registration) { r.Password, r.ConfirmPassword = "a", "b" }, ErrPasswordMismatch},
		{"exactly eight", func(r *Registration) { r.Password, r.ConfirmPassword = "12345678", "12345678" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := good
			tt.edit(&r)
			if err := r.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := Message(ErrPasswordMismatch); got != "Passwords do not match" {
		t.Errorf("Message() = %q", got)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
	r := Registration{Email: " ana@example.com ", Password: "p"}
	if c := r.Credentials(); c.Email != "ana@example.com" || c.Password != "p" {
		t.Errorf("Credentials() = %+v", c)
	}
}
