package repository

import (
	"context"

	"github.com/grouptab/ledger-bot/internal/models"
)

// TransactionRepository - книга транзакций, изолированная по chat_id
type TransactionRepository interface {
	// Create сохраняет одну транзакцию и заполняет ID и CreatedAt
	Create(ctx context.Context, transaction *models.Transaction) error

	// GetByChat возвращает транзакции чата в порядке добавления.
	// Пустая книга - это пустой срез, не ошибка.
	GetByChat(ctx context.Context, chatID int64) ([]models.Transaction, error)

	// DeleteByChat удаляет все транзакции чата. Идемпотентна.
	DeleteByChat(ctx context.Context, chatID int64) error
}

// UserRepository - таблица известных участников
type UserRepository interface {
	// Upsert создает запись или обновляет имя. Пустое имя никогда
	// не затирает сохраненное, только гарантирует наличие строки.
	Upsert(ctx context.Context, userID int64, username string) error

	// GetUsername возвращает имя и признак его наличия.
	// Отсутствие строки или имени - нормальный результат, не ошибка.
	GetUsername(ctx context.Context, userID int64) (string, bool, error)
}
