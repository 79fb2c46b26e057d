package metrics

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter computes the optional token metric using the cl100k_base
// encoding. It is constructed once per process because loading the encoding
// is expensive, and is safe for concurrent use.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	mu       sync.RWMutex
}

// NewTokenCounter initializes the cl100k_base encoding.
func NewTokenCounter() (*TokenCounter, error) {
	slog.Debug("Initializing token counter with cl100k_base encoding")

	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cl100k_base encoding: %w", err)
	}
	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in the raw text.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// nil params mean no special tokens allowed or disallowed
	tokens := tc.encoding.Encode(text, nil, nil)

	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", len(tokens))
	return len(tokens)
}
