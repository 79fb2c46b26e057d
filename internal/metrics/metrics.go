// Package metrics computes the scalar text metrics for one document under
// one preset. Compute is pure and total: any input string and any preset
// produce a valid Metrics value, fresh on every call.
//
// Most metrics are structural — they read the raw text and ignore every
// inclusion policy. Only the word count and the two character counts depend
// on the preprocessing pipeline's derived buffers.
package metrics

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mdtally/mdtally/internal/preset"
	"github.com/mdtally/mdtally/internal/textproc"
)

// paragraphBreak splits on runs of two-or-more line terminators.
var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// Metrics is the result of one computation. Values are always computed in
// full; preset visibility flags only control rendering.
type Metrics struct {
	WordsWithSpaces    int    `json:"wordsWithSpaces"`
	CharsWithSpaces    int    `json:"charsWithSpaces"`
	CharsWithoutSpaces int    `json:"charsWithoutSpaces"`
	Pages              string `json:"pages"`
	Lines              int    `json:"lines"`
	Paragraphs         int    `json:"paragraphs"`
	MarkdownLinks      int    `json:"markdownLinks"`
	WikiLinks          int    `json:"wikiLinks"`
	Citekeys           int    `json:"citekeys"`
}

// Compute derives all metrics from the raw text under the given preset.
func Compute(raw string, p preset.Preset) Metrics {
	pol := p.Policy()

	words := CountWords(textproc.WordBuffer(raw, pol))

	m := Metrics{
		WordsWithSpaces:    words,
		CharsWithSpaces:    countChars(textproc.CharBuffer(raw, pol, true), false),
		CharsWithoutSpaces: countChars(textproc.CharBuffer(raw, pol, false), true),
		Pages:              FormatPages(words, p.WordsPerPage),
		Lines:              CountLines(raw),
		Paragraphs:         CountParagraphs(raw),
		MarkdownLinks:      textproc.CountMarkdownLinks(raw),
		WikiLinks:          textproc.CountWikiLinks(raw),
		Citekeys:           textproc.CountCitekeys(raw),
	}

	slog.Debug("Metrics computed", "preset", p.Name, "textLength", len(raw), "words", words)
	return m
}

// CountWords counts whitespace-delimited tokens in the word buffer.
// strings.Fields trims and never produces degenerate empty tokens. Tokens
// with no letter or digit at all (stray punctuation left behind by a
// stripped construct, like the period after a removed citekey) are not
// words.
func CountWords(buf string) int {
	n := 0
	for _, tok := range strings.Fields(buf) {
		if hasWordChar(tok) {
			n++
		}
	}
	return n
}

func hasWordChar(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// countChars counts runes in a character buffer. With stripAllSpace false
// only line terminators are removed (regular spaces and tabs count); with
// stripAllSpace true every Unicode whitespace category is removed.
func countChars(buf string, stripAllSpace bool) int {
	stripped := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || (stripAllSpace && unicode.IsSpace(r)) {
			return -1
		}
		return r
	}, buf)
	return utf8.RuneCountInString(stripped)
}

// FormatPages renders words/wordsPerPage as a decimal with exactly one
// fractional digit. A non-positive or non-finite divisor yields a
// defined-but-degenerate string (the configuration layer is expected to
// reject such divisors before they get here).
func FormatPages(words int, wordsPerPage float64) string {
	return fmt.Sprintf("%.1f", float64(words)/wordsPerPage)
}

// CountLines counts line-terminator-delimited segments in the raw text.
// This is naive split semantics: no terminator means one segment, a trailing
// terminator contributes one extra empty segment, empty input means zero.
func CountLines(raw string) int {
	if raw == "" {
		return 0
	}
	return strings.Count(raw, "\n") + 1
}

// CountParagraphs counts blank-line-separated segments with non-blank
// content, after independently stripping leading frontmatter from the raw
// text (this metric bypasses the full pipeline).
func CountParagraphs(raw string) int {
	body := textproc.StripFrontmatter(raw)
	body = strings.ReplaceAll(body, "\r\n", "\n")

	n := 0
	for _, seg := range paragraphBreak.Split(body, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// ReadingTime estimates reading minutes for a word count at a typical
// 238 words per minute, formatted with one fractional digit.
func ReadingTime(words int) string {
	return fmt.Sprintf("%.1f", float64(words)/238.0)
}
