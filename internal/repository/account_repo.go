package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// AccountDirectory resolves account emails for item owners.
type AccountDirectory interface {
	EmailByUserID(ctx context.Context, userID string) (string, error)
}

// accountDirectory implements AccountDirectory
type accountDirectory struct {
	db *sql.DB
}

// NewAccountDirectory creates a new account directory backed by the users table.
func NewAccountDirectory(db *sql.DB) AccountDirectory {
	return &accountDirectory{db: db}
}

// EmailByUserID retrieves the account email for a user. A missing user yields
// an empty string, not an error.
func (r *accountDirectory) EmailByUserID(ctx context.Context, userID string) (string, error) {
	query := `SELECT email FROM users WHERE id = $1`

	var email string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("error looking up account email: %w", err)
	}

	return email, nil
}
