package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"condotrack/internal/entities"
	"condotrack/internal/service/auth"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetByUsername deliberately maps a missing account to the same error as a
// wrong password so login responses do not leak which usernames exist.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.UserAccount, error) {
	query := `
		SELECT user_id, username, password, role, status
		FROM user_account
		WHERE username = $1
	`

	var accountDB UserAccountDB
	err := r.querier.QueryRow(ctx, query, username).Scan(
		&accountDB.ID,
		&accountDB.Username,
		&accountDB.Password,
		&accountDB.Role,
		&accountDB.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("unexpected account repository getbyusername error: %w", err)
	}

	return ToDomain(&accountDB), nil
}
