package auth

import "errors"

var (
	ErrMissingCredentials = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")

	// ErrSigning means the signing key is unusable. It is a deployment
	// problem, not a per-request one.
	ErrSigning = errors.New("token signing unavailable")
)
