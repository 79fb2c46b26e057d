package metrics

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// CountSentences computes the optional sentence metric over the raw text.
// Segmentation runs on the document as written; markdown markup inside a
// sentence does not split it.
func CountSentences(text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return 0, fmt.Errorf("failed to segment sentences: %w", err)
	}

	n := len(doc.Sentences())
	slog.Debug("Sentence count calculated", "textLength", len(text), "sentenceCount", n)
	return n, nil
}
