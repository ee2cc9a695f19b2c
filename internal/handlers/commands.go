package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grouptab/ledger-bot/internal/state"
)

func (h *BotHandler) HandleStart(message *tgbotapi.Message) {
	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	log.Printf("User %d (%s) started the bot", message.From.ID, username)

	msg := fmt.Sprintf("👋 Hi, %s!\n\n"+
		"I keep a shared expense ledger for this chat.\n\n"+
		"Use /add to record a transaction, /display to see the ledger.",
		username,
	)
	h.sendMessage(message.Chat.ID, msg)
}

func (h *BotHandler) HandleHelp(message *tgbotapi.Message) {
	helpText := `📖 Available commands:

/add - Record a transaction in the shared ledger
/display - Show all transactions of this chat
/reset - Clear the ledger of this chat
/help - Show this help

📌 /add walks you through title, amount and description step by step. Send - as the description to skip it.`

	h.sendMessage(message.Chat.ID, helpText)
}

func (h *BotHandler) HandleAdd(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	session := h.stateManager.Session(chatID)
	session.Lock()
	defer session.Unlock()

	if session.State != state.StateIdle {
		h.sendMessage(chatID, "⏳ You're already adding a transaction, finish it first")
		return
	}

	session.State = state.StateAwaitingTitle
	h.sendMessage(chatID, msgPromptTitle)
}

func (h *BotHandler) HandleDisplay(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	ctx := context.Background()

	transactions, err := h.ledgerService.GetTransactions(ctx, chatID)
	if err != nil {
		log.Printf("Failed to get transactions for chat %d: %v", chatID, err)
		h.sendMessage(chatID, msgStorageError)
		return
	}

	if len(transactions) == 0 {
		h.sendMessage(chatID, "📭 The ledger is empty")
		return
	}

	blocks := make([]string, 0, len(transactions))
	for _, transaction := range transactions {
		username := h.ledgerService.ResolveUsername(ctx, transaction.UserID)
		blocks = append(blocks, FormatTransaction(
			transaction.Title,
			transaction.Amount,
			username,
			transaction.UserID,
			transaction.Description,
		))
	}

	h.sendMarkdown(chatID, strings.Join(blocks, "\n\n"))
}

func (h *BotHandler) HandleReset(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	ctx := context.Background()

	if err := h.ledgerService.ResetChat(ctx, chatID); err != nil {
		h.sendMessage(chatID, msgStorageError)
		return
	}

	h.sendMessage(chatID, "🗑 The ledger has been cleared")
}

func (h *BotHandler) HandleUnknownCommand(message *tgbotapi.Message) {
	h.sendMessage(message.Chat.ID, "❓ Unknown command.\n\nUse /help to see what I can do")
}
