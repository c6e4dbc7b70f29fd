package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository stores hashed refresh tokens so they can be
// revoked on logout or rotation.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error
	Exists(ctx context.Context, userID string, tokenHash string) (bool, error)
	Revoke(ctx context.Context, userID string, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
