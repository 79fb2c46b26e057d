package metrics

import (
	"testing"
)

func TestTokenCounter(t *testing.T) {
	tc, err := NewTokenCounter()
	if err != nil {
		// encoding data may be unavailable in offline environments
		t.Skipf("token counter unavailable: %v", err)
	}

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty string", "", 0},
		{"simple text", "hello world", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tc.Count(tt.text); got != tt.expected {
				t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 0},
		{"blank", "   \n", 0},
		{"two sentences", "This is first. This is second.", 2},
		{"question and statement", "Is it done? It is done.", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountSentences(tt.text)
			if err != nil {
				t.Fatalf("CountSentences(%q): %v", tt.text, err)
			}
			if got != tt.expected {
				t.Errorf("CountSentences(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}
