package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grouptab/ledger-bot/internal/models"
	"github.com/grouptab/ledger-bot/internal/state"
)

const (
	msgPromptTitle       = "🏷️ Enter a title for the transaction:"
	msgPromptAmount      = "💰 Send the amount as a number:"
	msgPromptDescription = "📝 Send a description (or - for none):"
	msgInvalidTitle      = "✏️ Please send plain text for the title"
	msgInvalidAmount     = "❌ That doesn't look like a number, try again"
	msgStorageError      = "❌ Something went wrong, try again later"
)

// noDescriptionSentinel вводится пользователем вместо описания
const noDescriptionSentinel = "-"

// HandleTextMessage продвигает диалог добавления транзакции.
// Блокировка сессии держится на весь шаг, включая запись в БД, -
// сообщения одного чата обрабатываются строго последовательно.
func (h *BotHandler) HandleTextMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	session := h.stateManager.Session(chatID)
	session.Lock()
	defer session.Unlock()

	switch session.State {
	case state.StateAwaitingTitle:
		title := strings.TrimSpace(message.Text)
		if title == "" {
			// невалидный ввод не сбрасывает диалог, просто переспрашиваем
			h.sendMessage(chatID, msgInvalidTitle)
			return
		}
		session.Title = title
		session.State = state.StateAwaitingAmount
		h.sendMessage(chatID, msgPromptAmount)

	case state.StateAwaitingAmount:
		amount, err := ParseAmount(message.Text)
		if err != nil {
			h.sendMessage(chatID, msgInvalidAmount)
			return
		}
		session.Amount = amount
		session.State = state.StateAwaitingDescription
		h.sendMessage(chatID, msgPromptDescription)

	case state.StateAwaitingDescription:
		h.commitTransaction(session, message.From, NormalizeDescription(message.Text))

	default:
		// нет активного диалога - обычный текст нас не интересует
	}
}

// commitTransaction записывает собранную транзакцию и подтверждает ее.
// Диалог завершается независимо от исхода записи: при ошибке хранилища
// пользователь начинает заново через /add, шаги не переигрываются.
func (h *BotHandler) commitTransaction(session *state.ChatSession, from *tgbotapi.User, description string) {
	ctx := context.Background()

	transaction := &models.Transaction{
		ChatID:      session.ChatID,
		UserID:      from.ID,
		Title:       session.Title,
		Amount:      session.Amount,
		Description: description,
	}
	session.Reset()

	if err := h.ledgerService.AddTransaction(ctx, transaction); err != nil {
		h.sendMessage(session.ChatID, msgStorageError)
		return
	}

	username := h.ledgerService.ResolveUsername(ctx, from.ID)
	h.sendMarkdown(session.ChatID, FormatTransaction(
		transaction.Title,
		transaction.Amount,
		username,
		from.ID,
		transaction.Description,
	))
}
