package auth

import (
	"context"

	"mesa-auction/internal/core/domain"
)

type ctxKey struct{}

// ContextWithIdentity stores the authenticated caller in ctx.
func ContextWithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}

// IdentityFromContext extracts the authenticated caller from ctx.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	v, ok := ctx.Value(ctxKey{}).(domain.Identity)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
