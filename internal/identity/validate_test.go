package identity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b.com", true},
		{"jane.doe+tag@example.co.uk", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"jane@", false},
		{strings.Repeat("a", 120) + "@example.com", false},
	}
	for _, tc := range cases {
		err := ValidateEmail(tc.email)
		if tc.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tc.email, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("%q: expected ErrInvalidEmail, got %v", tc.email, err)
		}
	}
}

func TestValidateFullName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"Jane Doe", true},
		{"Mary Jane Watson", true},
		{"  Jane\tDoe ", true},
		{"Jane", false},
		{"   ", false},
		{"", false},
	}
	for _, tc := range cases {
		err := ValidateFullName(tc.name)
		if tc.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidName) {
			t.Fatalf("%q: expected ErrInvalidName, got %v", tc.name, err)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	got, err := ValidatePhone("(201) 555-0123", "US")
	if err != nil {
		t.Fatalf("validate phone: %v", err)
	}
	if got != "+12015550123" {
		t.Fatalf("expected E.164 number, got %s", got)
	}

	got, err = ValidatePhone("", "US")
	if err != nil || got != "" {
		t.Fatalf("expected empty phone to pass through, got %q %v", got, err)
	}

	if _, err := ValidatePhone("12", "US"); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePassword(""); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for blank, got %v", err)
	}
	if err := ValidatePassword(strings.Repeat("x", 73)); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for long password, got %v", err)
	}
}

func TestValidateRegistrationNormalizes(t *testing.T) {
	reg, err := ValidateRegistration(Registration{
		Email:    "  a@b.com ",
		FullName: "Jane Doe",
		Password: "secret123",
		Phone:    "201-555-0123",
	}, "US")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if reg.Email != "a@b.com" {
		t.Fatalf("expected trimmed email, got %q", reg.Email)
	}
	if reg.Phone != "+12015550123" {
		t.Fatalf("expected normalized phone, got %q", reg.Phone)
	}
}
