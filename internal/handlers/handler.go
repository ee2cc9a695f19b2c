package handlers

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grouptab/ledger-bot/internal/services"
	"github.com/grouptab/ledger-bot/internal/state"
)

// MessageSender - то, что умеет отправлять сообщения в Telegram.
// *tgbotapi.BotAPI реализует интерфейс, в тестах подставляется фейк.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type BotHandler struct {
	bot           MessageSender
	ledgerService *services.LedgerService
	stateManager  *state.Manager
}

func NewBotHandler(
	bot MessageSender,
	ledgerService *services.LedgerService,
	stateManager *state.Manager,
) *BotHandler {
	return &BotHandler{
		bot:           bot,
		ledgerService: ledgerService,
		stateManager:  stateManager,
	}
}

// HandleMessage - точка входа для одного входящего сообщения.
// Сначала обновляем запись об отправителе, потом маршрутизируем.
func (h *BotHandler) HandleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}
	h.ledgerService.TouchUser(ctx, message.From.ID, username)

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			h.HandleStart(message)
		case "help":
			h.HandleHelp(message)
		case "add":
			h.HandleAdd(message)
		case "display":
			h.HandleDisplay(message)
		case "reset":
			h.HandleReset(message)
		default:
			h.HandleUnknownCommand(message)
		}
		return
	}

	h.HandleTextMessage(message)
}

func (h *BotHandler) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message to %d: %v", chatID, err)
		return err
	}
	return nil
}

// sendMarkdown отправляет текст, уже экранированный под MarkdownV2
func (h *BotHandler) sendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	_, err := h.bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send markdown message to %d: %v", chatID, err)
		return err
	}
	return nil
}
