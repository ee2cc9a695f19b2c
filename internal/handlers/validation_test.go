package handlers

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain decimal", "4.50", 4.5, false},
		{"comma separator", "4,50", 4.5, false},
		{"integer", "3", 3, false},
		{"padded", "  3.00  ", 3, false},
		{"negative allowed", "-2.5", -2.5, false},
		{"words", "not-a-number", 0, true},
		{"empty", "", 0, true},
		{"mixed", "4.50 quid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-", ""},
		{" - ", ""},
		{"dinner", "dinner"},
		{"  dinner  ", "dinner"},
		{"--", "--"},
	}

	for _, tt := range tests {
		if got := NormalizeDescription(tt.input); got != tt.want {
			t.Errorf("NormalizeDescription(%q): expected %q, got %q", tt.input, tt.want, got)
		}
	}
}
