package textproc

import (
	"strings"
)

// LinkMode controls how [label](target) links contribute to word counts.
type LinkMode int

const (
	// LinkStrip removes the whole link span (default when links don't count).
	LinkStrip LinkMode = iota
	// LinkLabel keeps only the label text.
	LinkLabel
	// LinkLabelAndTarget keeps both label and target as word tokens.
	LinkLabelAndTarget
)

// String returns the string representation of the link mode.
func (m LinkMode) String() string {
	switch m {
	case LinkStrip:
		return "strip"
	case LinkLabel:
		return "label"
	case LinkLabelAndTarget:
		return "label+target"
	default:
		return "unknown"
	}
}

// WikiLinkMode controls how [[...]] links contribute to word counts.
// Modeling the policy as a single mode (instead of two interacting booleans)
// makes the strip-wins precedence hold by construction.
type WikiLinkMode int

const (
	// WikiCountAll keeps everything inside the brackets as word-eligible
	// text, with | and # separators treated as whitespace (default).
	WikiCountAll WikiLinkMode = iota
	// WikiStrip removes the whole [[...]] span.
	WikiStrip
	// WikiDisplayText keeps the alias if present, else the target, with any
	// trailing #fragment removed.
	WikiDisplayText
)

// String returns the string representation of the wikilink mode.
func (m WikiLinkMode) String() string {
	switch m {
	case WikiCountAll:
		return "count-all"
	case WikiStrip:
		return "strip"
	case WikiDisplayText:
		return "display-text"
	default:
		return "unknown"
	}
}

// Policy is the resolved construct-handling policy for one computation.
// Callers derive it from preset booleans before invoking the pipeline.
type Policy struct {
	Links         LinkMode
	WikiLinks     WikiLinkMode
	CountCitekeys bool
	StripComments bool
}

// wikiSeparators maps the wikilink alias and anchor separators to spaces so
// the inner text splits into independent words under WikiCountAll.
var wikiSeparators = strings.NewReplacer("|", " ", "#", " ")

// base runs the shared pipeline (frontmatter through inline decoration).
// The transform order is fixed: later patterns must not re-match content
// already neutralized by earlier ones, and text revealed by one step (a link
// label, say) must still be visible to the steps after it.
func base(text string, pol Policy) string {
	p := getPatterns()

	// 1. frontmatter
	text = p.frontmatter.ReplaceAllString(text, "")

	// 2. comments, before code and links so comment bodies containing
	// fences or links never leak through
	if pol.StripComments {
		text = p.percentComment.ReplaceAllString(text, "")
		text = p.htmlComment.ReplaceAllString(text, "")
	}

	// 3. code
	text = p.fencedCode.ReplaceAllString(text, "")
	text = p.inlineCode.ReplaceAllString(text, "")

	// 4. images, before generic links so they are never miscounted
	text = p.image.ReplaceAllString(text, "")

	// 5. markdown links, both surface forms
	switch pol.Links {
	case LinkLabel:
		text = p.mdLink.ReplaceAllString(text, "$1")
		text = p.mdLinkReversed.ReplaceAllString(text, "$2")
	case LinkLabelAndTarget:
		text = p.mdLink.ReplaceAllString(text, "$1 $2")
		text = p.mdLinkReversed.ReplaceAllString(text, "$2 $1")
	default:
		text = p.mdLink.ReplaceAllString(text, "")
		text = p.mdLinkReversed.ReplaceAllString(text, "")
	}

	// 6. wikilinks
	switch pol.WikiLinks {
	case WikiStrip:
		text = p.wikiLink.ReplaceAllString(text, "")
	case WikiDisplayText:
		text = p.wikiLink.ReplaceAllStringFunc(text, func(match string) string {
			inner := p.wikiLink.FindStringSubmatch(match)[1]
			return wikiDisplayText(inner)
		})
	default:
		text = p.wikiLink.ReplaceAllStringFunc(text, func(match string) string {
			inner := p.wikiLink.FindStringSubmatch(match)[1]
			return wikiSeparators.Replace(inner)
		})
	}

	// 7. citekeys
	if pol.CountCitekeys {
		text = p.citekey.ReplaceAllString(text, "$1")
	} else {
		text = p.citekey.ReplaceAllString(text, "")
	}

	// 8. inline decoration; bold must unwrap before italic so ***x*** is
	// not partially consumed
	text = p.heading.ReplaceAllString(text, "")
	text = p.bold.ReplaceAllString(text, "$1")
	text = p.boldAlt.ReplaceAllString(text, "$1")
	text = p.italic.ReplaceAllString(text, "$1")
	text = p.italicAlt.ReplaceAllString(text, "$1")
	text = p.strikethrough.ReplaceAllString(text, "$1")
	text = p.blockquote.ReplaceAllString(text, "")
	text = p.tablePipe.ReplaceAllString(text, "")

	return text
}

// wikiDisplayText resolves [[target|alias]] inner text to its display form:
// the trimmed alias when non-empty, else the target, with a trailing
// #fragment removed from whichever is kept.
func wikiDisplayText(inner string) string {
	target, alias, hasAlias := strings.Cut(inner, "|")
	kept := strings.TrimSpace(target)
	if hasAlias {
		if a := strings.TrimSpace(alias); a != "" {
			kept = a
		}
	}
	if base, _, found := strings.Cut(kept, "#"); found {
		kept = strings.TrimSpace(base)
	}
	return kept
}

// WordBuffer produces the derived buffer used for word counting: the shared
// pipeline plus full removal of list markers (they contribute zero words).
func WordBuffer(text string, pol Policy) string {
	p := getPatterns()

	out := base(text, pol)
	out = p.checkboxMarker.ReplaceAllString(out, "")
	out = p.bulletMarker.ReplaceAllString(out, "")
	out = p.numberMarker.ReplaceAllString(out, "")
	return out
}

// CharBuffer produces the derived buffer used for character counting. List
// markers are not removed but substituted with fixed-width placeholders so
// the count reflects the width a rendered marker occupies rather than its
// literal glyphs. Widths differ between the with-spaces and without-spaces
// variants of the metric.
func CharBuffer(text string, pol Policy, countSpaces bool) string {
	p := getPatterns()

	bulletWidth, numberWidth := 1, 2
	if countSpaces {
		bulletWidth, numberWidth = 2, 3
	}

	out := base(text, pol)
	out = p.checkboxMarker.ReplaceAllString(out, placeholder(bulletWidth))
	out = p.bulletMarker.ReplaceAllString(out, placeholder(bulletWidth))
	out = p.numberMarker.ReplaceAllString(out, placeholder(numberWidth))
	return out
}

// placeholder returns a run of width non-whitespace filler characters.
func placeholder(width int) string {
	return strings.Repeat("#", width)
}

// StripFrontmatter removes a leading delimited metadata block, if any.
// Delimiter-shaped content later in the document is left alone.
func StripFrontmatter(text string) string {
	return getPatterns().frontmatter.ReplaceAllString(text, "")
}

// CountMarkdownLinks counts [label](target) tokens that are not images,
// plus reversed-form (target)[label] tokens, in the raw text. The count is
// structural: it ignores every inclusion policy.
func CountMarkdownLinks(text string) int {
	p := getPatterns()

	n := 0
	for _, loc := range p.mdLink.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && text[loc[0]-1] == '!' {
			continue // image, not a link
		}
		n++
	}
	return n + len(p.mdLinkReversed.FindAllStringIndex(text, -1))
}

// CountWikiLinks counts [[...]] tokens in the raw text.
func CountWikiLinks(text string) int {
	return len(getPatterns().wikiLink.FindAllStringIndex(text, -1))
}

// CountCitekeys counts [@key] tokens in the raw text.
func CountCitekeys(text string) int {
	return len(getPatterns().citekey.FindAllStringIndex(text, -1))
}
