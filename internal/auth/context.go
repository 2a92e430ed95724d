package auth

import (
	"context"
	"strings"
)

type ownerKey struct{}

// WithOwnerID returns a context carrying the authenticated owner identity.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, strings.TrimSpace(ownerID))
}

// OwnerID returns the owner identity attached by the auth middleware, or "".
func OwnerID(ctx context.Context) string {
	if v, ok := ctx.Value(ownerKey{}).(string); ok {
		return v
	}
	return ""
}
