package identity

import "time"

// Identity represents a registered account.
type Identity struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	ModifiedAt     time.Time `json:"modified_at"`
}

// Registration is the client supplied input for creating an Identity.
type Registration struct {
	Email    string
	FullName string
	Password string
	Phone    string
}
