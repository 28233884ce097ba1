package ports

import (
	"context"
	"time"
)

// TokenDenylist records revoked token ids until their natural expiry.
// Tokens carry no mutable state, so logout works by remembering the jti
// for the remainder of its lifetime rather than editing the token.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
