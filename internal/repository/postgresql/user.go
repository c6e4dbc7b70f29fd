package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nominalabs/nomina-backend-go/internal/domain/user"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, company_id, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, u.ID, u.CompanyID, u.Email, u.PasswordHash, u.IsAdmin)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrUserEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepository) getBy(ctx context.Context, column, value string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, company_id, email, password_hash, is_admin, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var u user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.IsAdmin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) UpdateCompanyID(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE users SET company_id = $2, updated_at = NOW() WHERE id = $1`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update user company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
