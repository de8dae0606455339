package auth

import (
	"context"

	"github.com/Ricozl/commerce/internal/models"
)

type identityKey struct{}

// WithIdentity stores the signed-in identity in ctx
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity stored by WithIdentity
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	return identity, ok && !identity.IsZero()
}
