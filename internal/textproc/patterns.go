// Package textproc implements the ordered Markdown transform pipeline that
// turns a raw document into the derived buffers used for word and character
// counting. All transforms are pure string rewrites; none of them can fail.
package textproc

import (
	"regexp"
	"sync"
)

// markdownPatterns holds the compiled regex patterns used by the pipeline.
// Paired delimiters match non-greedily so one match never spans two
// independent tokens; inline code is the documented exception (greedy within
// a single backtick pair, no nesting).
type markdownPatterns struct {
	frontmatter *regexp.Regexp
	percentComment,
	htmlComment *regexp.Regexp
	fencedCode,
	inlineCode *regexp.Regexp
	image *regexp.Regexp
	mdLink,
	mdLinkReversed *regexp.Regexp
	wikiLink *regexp.Regexp
	citekey  *regexp.Regexp
	heading,
	bold,
	boldAlt,
	italic,
	italicAlt,
	strikethrough,
	blockquote,
	tablePipe *regexp.Regexp
	checkboxMarker,
	bulletMarker,
	numberMarker *regexp.Regexp
}

var (
	patterns     *markdownPatterns
	patternsOnce sync.Once
)

// getPatterns returns the singleton instance of compiled patterns.
func getPatterns() *markdownPatterns {
	patternsOnce.Do(func() {
		patterns = &markdownPatterns{
			// only a block at the very start of the document is frontmatter;
			// both delimiters must sit on their own lines
			frontmatter: regexp.MustCompile(`\A---\r?\n(?s:.*?)\r?\n---(?:\r?\n|\z)`),

			percentComment: regexp.MustCompile(`(?s)%%.*?%%`),
			htmlComment:    regexp.MustCompile(`(?s)<!--.*?-->`),

			fencedCode: regexp.MustCompile("(?s)\x60{3}.*?\x60{3}"),
			inlineCode: regexp.MustCompile("\x60[^\x60]+\x60"),

			image: regexp.MustCompile(`!\[[^\[\]]*\]\([^()]*\)`),

			mdLink:         regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`),
			mdLinkReversed: regexp.MustCompile(`\(([^()]*)\)\[([^\[\]]*)\]`),

			wikiLink: regexp.MustCompile(`\[\[([^\[\]]*?)\]\]`),
			citekey:  regexp.MustCompile(`\[@([^\[\]\s]+)\]`),

			heading:       regexp.MustCompile(`(?m)^#{1,6} `),
			bold:          regexp.MustCompile(`\*\*(.*?)\*\*`),
			boldAlt:       regexp.MustCompile(`__(.*?)__`),
			italic:        regexp.MustCompile(`\*(.*?)\*`),
			italicAlt:     regexp.MustCompile(`_(.*?)_`),
			strikethrough: regexp.MustCompile(`~~(.*?)~~`),
			blockquote:    regexp.MustCompile(`(?m)^(?:>[ \t]?)+`),
			tablePipe:     regexp.MustCompile(`\|`),

			// list markers are line-anchored; mid-text lookalikes never match
			checkboxMarker: regexp.MustCompile(`(?m)^[ \t]*[-*+] \[[ xX]\] `),
			bulletMarker:   regexp.MustCompile(`(?m)^[ \t]*[-*+] `),
			numberMarker:   regexp.MustCompile(`(?m)^[ \t]*\d+[.)] `),
		}
	})
	return patterns
}
