package services

import (
	"context"
	"log"
	"strconv"

	"github.com/grouptab/ledger-bot/internal/models"
	"github.com/grouptab/ledger-bot/internal/repository"
)

type LedgerService struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
}

func NewLedgerService(transactionRepo repository.TransactionRepository, userRepo repository.UserRepository) *LedgerService {
	return &LedgerService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// добавляет транзакцию в книгу чата
func (s *LedgerService) AddTransaction(ctx context.Context, transaction *models.Transaction) error {
	err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		log.Printf("Failed to add transaction: %v", err)
		return err
	}
	log.Printf("Transaction added: chat=%d, user=%d, title=%s, amount=%.2f",
		transaction.ChatID, transaction.UserID, transaction.Title, transaction.Amount)
	return nil
}

// возвращает книгу чата в порядке добавления
func (s *LedgerService) GetTransactions(ctx context.Context, chatID int64) ([]models.Transaction, error) {
	return s.transactionRepo.GetByChat(ctx, chatID)
}

// очищает книгу чата целиком
func (s *LedgerService) ResetChat(ctx context.Context, chatID int64) error {
	err := s.transactionRepo.DeleteByChat(ctx, chatID)
	if err != nil {
		log.Printf("Failed to reset chat %d: %v", chatID, err)
		return err
	}
	log.Printf("Ledger reset: chat=%d", chatID)
	return nil
}

// TouchUser обновляет запись об участнике при каждом входящем сообщении.
// Ошибка не прерывает обработку - имя участника не критично для книги.
func (s *LedgerService) TouchUser(ctx context.Context, userID int64, username string) {
	if err := s.userRepo.Upsert(ctx, userID, username); err != nil {
		log.Printf("Failed to upsert user %d: %v", userID, err)
	}
}

// ResolveUsername возвращает сохраненное имя, иначе числовой id
func (s *LedgerService) ResolveUsername(ctx context.Context, userID int64) string {
	username, ok, err := s.userRepo.GetUsername(ctx, userID)
	if err != nil {
		log.Printf("Failed to resolve username %d: %v", userID, err)
	}
	if !ok {
		return strconv.FormatInt(userID, 10)
	}
	return username
}
