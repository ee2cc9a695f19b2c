package handlers

import (
	"strings"
	"testing"
)

func TestFormatTransaction(t *testing.T) {
	got := FormatTransaction("Coffee", 4.5, "bob", 7, "")

	want := "🏷️ Coffee\n💰 £4\\.50\n🥷 [bob](tg://user?id=7)"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatTransactionWithDescription(t *testing.T) {
	got := FormatTransaction("Coffee", 4.5, "bob", 7, "late night")

	if !strings.HasSuffix(got, "\n📝 late night") {
		t.Errorf("Expected description line, got %q", got)
	}
}

func TestFormatTransactionOmitsEmptyDescription(t *testing.T) {
	got := FormatTransaction("Coffee", 4.5, "bob", 7, "")

	if strings.Contains(got, "📝") {
		t.Errorf("Expected no description line, got %q", got)
	}
}

func TestFormatTransactionEscapesMarkdown(t *testing.T) {
	got := FormatTransaction("a_b*c [x]", 1, "bob_the*builder", 7, "10% off (maybe)")

	for _, want := range []string{
		"a\\_b\\*c \\[x\\]",
		"bob\\_the\\*builder",
		"10% off \\(maybe\\)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected escaped %q in %q", want, got)
		}
	}
}

func TestFormatPounds(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{3, "£3.00"},
		{4.5, "£4.50"},
		{1234.567, "£1234.57"},
		{0, "£0.00"},
	}

	for _, tt := range tests {
		if got := formatPounds(tt.amount); got != tt.want {
			t.Errorf("formatPounds(%v): expected %q, got %q", tt.amount, tt.want, got)
		}
	}
}
