// Package keywords extracts the most frequent content terms from a document.
//
// Terms are lowercased, stemmed with the snowball English stemmer, and
// counted; common function words and markdown plumbing terms are filtered
// out with a stemmed stopword set. The result is a frequency ranking, not a
// relevance score: there is no query to rank against.
package keywords

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

// tokenRegex extracts alphabetic word tokens; numbers and markup punctuation
// never make useful keywords.
var tokenRegex = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// stopwords contains stemmed forms of common function words that would
// otherwise dominate any frequency ranking.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "this": {},
	"with": {}, "from": {}, "have": {}, "has": {}, "had": {},
	"was": {}, "were": {}, "are": {}, "not": {}, "but": {},
	"you": {}, "your": {}, "our": {}, "their": {}, "they": {},
	"his": {}, "her": {}, "its": {}, "who": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "how": {},
	"can": {}, "could": {}, "would": {}, "should": {}, "will": {},
	"all": {}, "ani": {}, "each": {}, "more": {}, "most": {},
	"some": {}, "such": {}, "onli": {}, "other": {}, "into": {},
	"than": {}, "then": {}, "them": {}, "there": {}, "these": {},
	"those": {}, "also": {}, "about": {}, "after": {}, "befor": {},
	"between": {}, "through": {}, "been": {}, "veri": {}, "just": {},
	"over": {}, "under": {}, "out": {}, "use": {},
}

// Keyword is one ranked term with its occurrence count.
type Keyword struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Top returns the n most frequent stemmed content terms in the text, ties
// broken alphabetically so the ranking is deterministic.
func Top(text string, n int) []Keyword {
	if n <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	counts := make(map[string]int)
	for _, token := range tokenRegex.FindAllString(strings.ToLower(text), -1) {
		if len(token) < 3 {
			continue // too short to be a content word
		}

		stemmed, err := snowball.Stem(token, "english", true)
		if err != nil {
			// if stemming fails, use the original token
			stemmed = token
		}
		if _, skip := stopwords[stemmed]; skip {
			continue
		}
		counts[stemmed]++
	}

	ranked := make([]Keyword, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, Keyword{Term: term, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	slog.Debug("Keyword ranking computed", "uniqueTerms", len(counts), "returned", len(ranked))
	return ranked
}
