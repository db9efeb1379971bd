package identity

import "errors"

var (
	// validation errors
	ErrInvalidEmail    = errors.New("email is not valid")
	ErrInvalidName     = errors.New("full name must contain at least a first and a last name")
	ErrInvalidPhone    = errors.New("phone number is not valid")
	ErrInvalidPassword = errors.New("password is not valid")

	// repository errors
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("identity not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
