package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// TokenIssuer signs a session token for an identity id.
type TokenIssuer interface {
	Issue(id int64) (string, error)
}

// Service manages identity lifecycle.
type Service struct {
	repo        Repository
	hasher      PasswordHasher
	issuer      TokenIssuer
	phoneRegion string
	logger      *slog.Logger
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher, issuer TokenIssuer, phoneRegion string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, hasher: hasher, issuer: issuer, phoneRegion: phoneRegion, logger: logger}
}

// Register validates the input, stores a new identity with a hashed password
// and returns it together with a freshly issued session token. Nothing is
// persisted when validation or hashing fails.
func (s *Service) Register(ctx context.Context, reg Registration) (Identity, string, error) {
	reg, err := ValidateRegistration(reg, s.phoneRegion)
	if err != nil {
		return Identity{}, "", err
	}

	digest, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return Identity{}, "", err
	}
	reg.Password = ""

	created, err := s.repo.Create(ctx, Identity{
		Email:          reg.Email,
		PasswordDigest: digest,
		FullName:       reg.FullName,
		Phone:          reg.Phone,
	})
	if err != nil {
		return Identity{}, "", err
	}

	token, err := s.issuer.Issue(created.ID)
	if err != nil {
		return Identity{}, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("identity registered", slog.Int64("user_id", created.ID))
	return created, token, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords are reported identically.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}
	if !s.hasher.Verify(password, found.PasswordDigest) {
		return Identity{}, ErrInvalidCredentials
	}
	return found, nil
}
