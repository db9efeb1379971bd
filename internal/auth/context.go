package auth

import (
	"context"

	"github.com/clothes-shop/clothes/internal/identity"
)

type contextKey struct {
	name string
}

var identityCtxKey = &contextKey{"identity"}

// WithIdentity attaches the authenticated identity to ctx.
func WithIdentity(ctx context.Context, id identity.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, id)
}

// IdentityFrom returns the identity attached by the auth gate.
func IdentityFrom(ctx context.Context) (identity.Identity, bool) {
	id, ok := ctx.Value(identityCtxKey).(identity.Identity)
	return id, ok
}
