package catalog

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

func (r *timeoutRepository) List(ctx context.Context, filter Filter) ([]Garment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.List(ctx, filter)
}

func (r *timeoutRepository) Create(ctx context.Context, g Garment) (Garment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.next.Create(ctx, g)
}
