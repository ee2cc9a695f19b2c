package handlers

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount разбирает сумму из пользовательского текста.
// Запятая принимается как десятичный разделитель.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, ",", ".")

	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", text)
	}
	return amount, nil
}

// NormalizeDescription превращает "-" в пустое описание
func NormalizeDescription(text string) string {
	text = strings.TrimSpace(text)
	if text == noDescriptionSentinel {
		return ""
	}
	return text
}
