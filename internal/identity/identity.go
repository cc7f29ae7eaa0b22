package identity

import (
	"context"
)

type ctxKey string

const playerIDKey ctxKey = "playerID"

// Provider resolves a session token to a player id. The identity service
// itself is an external collaborator; the engine only consumes this
// interface and fails Unauthenticated when no identity is present.
type Provider interface {
	Resolve(ctx context.Context, token string) (playerID string, err error)
}

// WithPlayerID returns a new context carrying the acting player's id
func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, playerIDKey, playerID)
}

// FromContext extracts the acting player's id from the context, if present
func FromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(playerIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok && id != "" {
		return id, true
	}
	return "", false
}
