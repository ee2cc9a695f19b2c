package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type pgUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Upsert(ctx context.Context, userID int64, username string) error {
	// NULLIF не дает пустому имени затереть сохраненное
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, username)
		 VALUES ($1, NULLIF($2, ''))
		 ON CONFLICT (user_id)
		 DO UPDATE SET username = COALESCE(NULLIF($2, ''), users.username)`,
		userID, username,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", userID, err)
	}
	return nil
}

func (r *pgUserRepository) GetUsername(ctx context.Context, userID int64) (string, bool, error) {
	var username sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT username FROM users WHERE user_id = $1`, userID,
	).Scan(&username)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get username %d: %w", userID, err)
	}
	if !username.Valid || username.String == "" {
		return "", false, nil
	}

	return username.String, true, nil
}
