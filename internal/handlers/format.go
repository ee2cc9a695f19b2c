package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// FormatTransaction собирает подтверждение транзакции в MarkdownV2.
// Каждая пользовательская строка экранируется отдельно, чтобы спецсимволы
// в заголовке или описании не ломали разметку.
func FormatTransaction(title string, amount float64, username string, userID int64, description string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏷️ %s\n", escapeMarkdown(title))
	fmt.Fprintf(&b, "💰 %s\n", escapeMarkdown(formatPounds(amount)))
	fmt.Fprintf(&b, "🥷 [%s](tg://user?id=%d)", escapeMarkdown(username), userID)

	if description != "" {
		fmt.Fprintf(&b, "\n📝 %s", escapeMarkdown(description))
	}

	return b.String()
}

func formatPounds(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}

func escapeMarkdown(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, text)
}
