package identity

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

const (
	maxEmailLength    = 120
	maxFullNameLength = 200
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// ValidateEmail checks that email is a syntactically valid address. The
// domain is not resolved.
func ValidateEmail(email string) error {
	err := validation.Validate(email,
		validation.Required,
		validation.Length(3, maxEmailLength),
		is.Email,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}
	return nil
}

// ValidateFullName requires at least two whitespace separated tokens.
func ValidateFullName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.Length(0, maxFullNameLength),
		validation.By(hasFirstAndLastName),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return nil
}

func hasFirstAndLastName(value interface{}) error {
	s, _ := value.(string)
	if len(strings.Fields(s)) < 2 {
		return errors.New("provide at least first_name and last_name")
	}
	return nil
}

// ValidatePhone parses an optional phone number and returns it in E.164
// form. Numbers without a country prefix are read in region.
func ValidatePhone(phone, region string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ValidatePassword only enforces presence and the bcrypt input limit.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: cannot be blank", ErrInvalidPassword)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: must be at most %d bytes", ErrInvalidPassword, maxPasswordLength)
	}
	return nil
}

// ValidateRegistration runs every credential check and returns the
// normalized registration. The first failing check wins.
func ValidateRegistration(r Registration, region string) (Registration, error) {
	r.Email = strings.TrimSpace(r.Email)
	if err := ValidateEmail(r.Email); err != nil {
		return Registration{}, err
	}
	if err := ValidateFullName(r.FullName); err != nil {
		return Registration{}, err
	}
	if err := ValidatePassword(r.Password); err != nil {
		return Registration{}, err
	}
	phone, err := ValidatePhone(r.Phone, region)
	if err != nil {
		return Registration{}, err
	}
	r.Phone = phone
	return r, nil
}
