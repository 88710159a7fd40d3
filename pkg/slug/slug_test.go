package slug

import (
	"regexp"
	"testing"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		venue    string
		city     string
		expected string
	}{
		{"name with city", "Futsal Arena Jakarta", "Jakarta", "futsal-arena-jakarta-jakarta"},
		{"name only", "Futsal Arena Jakarta", "", "futsal-arena-jakarta"},
		{"punctuation and accents stripped", "Café @ Blok M!", "", "caf-blok-m"},
		{"uppercase lowered", "GOR Senayan", "JAKARTA", "gor-senayan-jakarta"},
		{"existing hyphens kept", "Co-Working Court", "", "co-working-court"},
		{"whitespace runs collapse", "Lapangan   Badminton", "Bandung", "lapangan-badminton-bandung"},
		{"leading and trailing junk trimmed", "  --Arena--  ", "", "arena"},
		{"digits kept", "Futsal 88", "Surabaya", "futsal-88-surabaya"},
		{"everything stripped", "@@@", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.venue, tt.city)
			if got != tt.expected {
				t.Errorf("Make(%q, %q) = %q, expected %q", tt.venue, tt.city, got, tt.expected)
			}
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	first := Make("Futsal Arena Jakarta", "Jakarta")
	for i := 0; i < 10; i++ {
		if got := Make("Futsal Arena Jakarta", "Jakarta"); got != first {
			t.Fatalf("expected deterministic output, got %q then %q", first, got)
		}
	}
}

func TestMakeOutputPattern(t *testing.T) {
	inputs := []struct{ name, city string }{
		{"Futsal Arena Jakarta", "Jakarta"},
		{"Café @ Blok M!", ""},
		{"  GOR --- Senayan  ", "Jakarta Pusat"},
		{"???", ""},
		{"Lapangan Voli Pantai", "Bali"},
	}

	for _, in := range inputs {
		got := Make(in.name, in.city)
		if got == "" {
			continue
		}
		if !slugPattern.MatchString(got) {
			t.Errorf("Make(%q, %q) = %q does not match the slug pattern", in.name, in.city, got)
		}
	}
}
