package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mdtally/mdtally/internal/keywords"
	"github.com/mdtally/mdtally/internal/metrics"
	"github.com/mdtally/mdtally/internal/preset"
)

// OutputFormat defines the output format for results.
type OutputFormat int

const (
	// Text output format (default)
	Text OutputFormat = iota
	// Markdown table output
	Markdown
	// JSON output format
	JSON
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case Markdown:
		return "Markdown"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// noMetricsPlaceholder is shown when a preset surfaces nothing at all.
const noMetricsPlaceholder = "(no metrics enabled for this preset)"

// result is one document's computed output, shaped for rendering.
type result struct {
	Source string `json:"source"`
	Preset string `json:"preset"`
	metrics.Metrics
	Tokens      *int               `json:"tokens,omitempty"`
	Sentences   *int               `json:"sentences,omitempty"`
	ReadingTime string             `json:"readingTime,omitempty"`
	Keywords    []keywords.Keyword `json:"keywords,omitempty"`
}

// renderer turns documents into formatted output. The token counter is
// created lazily because loading the encoding is the only expensive setup
// in the program, and most presets never surface tokens.
type renderer struct {
	format      OutputFormat
	topKeywords int
	tokens      *metrics.TokenCounter
}

func newRenderer(cfg Config) (*renderer, error) {
	return &renderer{format: cfg.OutputFormat, topKeywords: cfg.TopKeywords}, nil
}

// render computes metrics for one document under one preset and formats
// them. Every core metric is always computed; visibility only filters what
// is emitted. The optional extras are computed only when surfaced.
func (r *renderer) render(doc document, p preset.Preset) (string, error) {
	res := result{
		Source:  doc.source,
		Preset:  p.Name,
		Metrics: metrics.Compute(doc.text, p),
	}

	if p.Show.Tokens {
		if r.tokens == nil {
			tc, err := metrics.NewTokenCounter()
			if err != nil {
				return "", err
			}
			r.tokens = tc
		}
		n := r.tokens.Count(doc.text)
		res.Tokens = &n
	}
	if p.Show.Sentences {
		n, err := metrics.CountSentences(doc.text)
		if err != nil {
			return "", err
		}
		res.Sentences = &n
	}
	if p.Show.ReadingTime {
		res.ReadingTime = metrics.ReadingTime(res.WordsWithSpaces)
	}
	if r.topKeywords > 0 {
		res.Keywords = keywords.Top(doc.text, r.topKeywords)
	}

	switch r.format {
	case JSON:
		return renderJSON(res)
	case Markdown:
		return renderMarkdown(res, p.Show), nil
	default:
		return renderText(res, p.Show), nil
	}
}

// row is one visible metric line.
type row struct {
	label string
	value string
}

// visibleRows applies the preset's visibility flags. Order is fixed so
// output is stable across runs.
func visibleRows(res result, show preset.Visibility) []row {
	var rows []row
	add := func(on bool, label, value string) {
		if on {
			rows = append(rows, row{label, value})
		}
	}

	add(show.Words, "Words", fmt.Sprintf("%d", res.WordsWithSpaces))
	add(show.CharsWithSpaces, "Characters (with spaces)", fmt.Sprintf("%d", res.CharsWithSpaces))
	add(show.CharsWithoutSpaces, "Characters (no spaces)", fmt.Sprintf("%d", res.CharsWithoutSpaces))
	add(show.Pages, "Pages", res.Pages)
	add(show.Lines, "Lines", fmt.Sprintf("%d", res.Lines))
	add(show.Paragraphs, "Paragraphs", fmt.Sprintf("%d", res.Paragraphs))
	add(show.MarkdownLinks, "Markdown links", fmt.Sprintf("%d", res.MarkdownLinks))
	add(show.WikiLinks, "Wiki links", fmt.Sprintf("%d", res.WikiLinks))
	add(show.Citekeys, "Citekeys", fmt.Sprintf("%d", res.Citekeys))
	if res.Tokens != nil {
		add(show.Tokens, "Tokens", fmt.Sprintf("%d", *res.Tokens))
	}
	if res.Sentences != nil {
		add(show.Sentences, "Sentences", fmt.Sprintf("%d", *res.Sentences))
	}
	if res.ReadingTime != "" {
		add(show.ReadingTime, "Reading time (min)", res.ReadingTime)
	}
	return rows
}

func renderText(res result, show preset.Visibility) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (preset: %s)\n", res.Source, res.Preset)

	rows := visibleRows(res, show)
	if len(rows) == 0 {
		b.WriteString(noMetricsPlaceholder + "\n")
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-26s %s\n", r.label+":", r.value)
	}

	for _, kw := range res.Keywords {
		fmt.Fprintf(&b, "  keyword: %s (%d)\n", kw.Term, kw.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderMarkdown(res result, show preset.Visibility) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (preset: %s)\n\n", res.Source, res.Preset)

	rows := visibleRows(res, show)
	if len(rows) == 0 {
		b.WriteString(noMetricsPlaceholder + "\n")
		return strings.TrimRight(b.String(), "\n")
	}

	b.WriteString("| Metric | Value |\n|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r.label, r.value)
	}
	for _, kw := range res.Keywords {
		fmt.Fprintf(&b, "| Keyword: %s | %d |\n", kw.Term, kw.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderJSON(res result) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
