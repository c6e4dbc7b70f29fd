package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nominalabs/nomina-backend-go/internal/domain/auth"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Store(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, userID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) Exists(ctx context.Context, userID string, tokenHash string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM refresh_tokens
			WHERE user_id = $1 AND token_hash = $2 AND expires_at > NOW()
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, tokenHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return exists, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, userID string, tokenHash string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE user_id = $1 AND token_hash = $2`,
		userID, tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}
