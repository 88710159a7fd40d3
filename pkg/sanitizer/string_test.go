package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"Futsal Arena", "Futsal Arena"},
		{"  Futsal   Arena  ", "Futsal Arena"},
		{"Futsal\t\nArena", "Futsal Arena"},
	}

	for _, tt := range tests {
		if got := TrimAndNormalize(tt.input); got != tt.expected {
			t.Errorf("TrimAndNormalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  GOR   Senayan "); got != "gor senayan" {
		t.Errorf("NormalizeQuery = %q, expected %q", got, "gor senayan")
	}
}
