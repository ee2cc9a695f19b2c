package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grouptab/ledger-bot/internal/models"
)

type pgTransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &pgTransactionRepository{db: db}
}

func (r *pgTransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (chat_id, user_id, title, amount, description)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		transaction.ChatID, transaction.UserID, transaction.Title,
		transaction.Amount, transaction.Description,
	).Scan(&transaction.ID, &transaction.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *pgTransactionRepository) GetByChat(ctx context.Context, chatID int64) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, chat_id, user_id, title, amount, description, created_at
		 FROM transactions
		 WHERE chat_id = $1
		 ORDER BY id`,
		chatID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		transaction := models.Transaction{}
		err := rows.Scan(&transaction.ID, &transaction.ChatID, &transaction.UserID,
			&transaction.Title, &transaction.Amount, &transaction.Description, &transaction.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func (r *pgTransactionRepository) DeleteByChat(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM transactions WHERE chat_id = $1`,
		chatID,
	)
	if err != nil {
		return fmt.Errorf("failed to reset chat %d: %w", chatID, err)
	}
	return nil
}
