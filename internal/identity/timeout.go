package identity

import (
	"context"
	"time"
)

type timeoutRepository struct {
	next    Repository
	timeout time.Duration
}

// WithTimeout bounds every call on repo by d.
func WithTimeout(repo Repository, d time.Duration) Repository {
	if d <= 0 {
		return repo
	}
	return &timeoutRepository{next: repo, timeout: d}
}

func (r *timeoutRepository) Create(ctx context.Context, identity Identity) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.Create(ctx, identity)
}

func (r *timeoutRepository) FindByID(ctx context.Context, id int64) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.FindByID(ctx, id)
}

func (r *timeoutRepository) FindByEmail(ctx context.Context, email string) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.FindByEmail(ctx, email)
}
