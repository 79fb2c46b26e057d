// Package preset defines the metric configuration bundles that drive a
// computation: which constructs fold into the word and character counts,
// which metrics are surfaced, and the words-per-page divisor.
package preset

import (
	"github.com/mdtally/mdtally/internal/textproc"
)

// DefaultWordsPerPage is used when a preset carries no usable divisor.
const DefaultWordsPerPage = 300.0

// Visibility selects which metrics are surfaced by the display layer.
// These flags never affect computed values, only what is rendered.
type Visibility struct {
	Words              bool `yaml:"words"`
	CharsWithSpaces    bool `yaml:"chars-with-spaces"`
	CharsWithoutSpaces bool `yaml:"chars-without-spaces"`
	Pages              bool `yaml:"pages"`
	Lines              bool `yaml:"lines"`
	Paragraphs         bool `yaml:"paragraphs"`
	MarkdownLinks      bool `yaml:"markdown-links"`
	WikiLinks          bool `yaml:"wiki-links"`
	Citekeys           bool `yaml:"citekeys"`

	// optional extras, computed only when surfaced
	Tokens      bool `yaml:"tokens"`
	Sentences   bool `yaml:"sentences"`
	ReadingTime bool `yaml:"reading-time"`
}

// Any reports whether at least one metric is surfaced.
func (v Visibility) Any() bool {
	return v.Words || v.CharsWithSpaces || v.CharsWithoutSpaces || v.Pages ||
		v.Lines || v.Paragraphs || v.MarkdownLinks || v.WikiLinks ||
		v.Citekeys || v.Tokens || v.Sentences || v.ReadingTime
}

// Preset is one named metric configuration. It is immutable for the
// duration of a computation; the core only reads it.
type Preset struct {
	Name         string  `yaml:"-"`
	WordsPerPage float64 `yaml:"words-per-page"`

	// inclusion policy flags
	CountMdLinksAsWords      bool `yaml:"count-md-links-as-words"`
	CountMdLinkTargets       bool `yaml:"count-md-link-targets"`
	IgnoreWikiLinks          bool `yaml:"ignore-wiki-links"`
	CountWikiLinkDisplayText bool `yaml:"count-wiki-link-display-text"`
	CountCitekeysAsWords     bool `yaml:"count-citekeys-as-words"`
	IgnoreComments           bool `yaml:"ignore-comments"`

	Show Visibility `yaml:"show"`
}

// Default returns the built-in preset: every core metric surfaced, links and
// citekeys stripped from the word count, comments counted.
func Default() Preset {
	return Preset{
		Name:         "default",
		WordsPerPage: DefaultWordsPerPage,
		Show: Visibility{
			Words:              true,
			CharsWithSpaces:    true,
			CharsWithoutSpaces: true,
			Pages:              true,
			Lines:              true,
			Paragraphs:         true,
			MarkdownLinks:      true,
			WikiLinks:          true,
			Citekeys:           true,
		},
	}
}

// Policy resolves the preset's boolean flags into the pipeline policy.
// IgnoreWikiLinks is checked before CountWikiLinkDisplayText: when both are
// set, wikilinks are stripped entirely and the display-text flag has no
// effect. Resolving to a single mode here is what keeps that precedence from
// ever being re-decided downstream.
func (p Preset) Policy() textproc.Policy {
	links := textproc.LinkStrip
	if p.CountMdLinksAsWords {
		links = textproc.LinkLabel
		if p.CountMdLinkTargets {
			links = textproc.LinkLabelAndTarget
		}
	}

	wiki := textproc.WikiCountAll
	switch {
	case p.IgnoreWikiLinks:
		wiki = textproc.WikiStrip
	case p.CountWikiLinkDisplayText:
		wiki = textproc.WikiDisplayText
	}

	return textproc.Policy{
		Links:         links,
		WikiLinks:     wiki,
		CountCitekeys: p.CountCitekeysAsWords,
		StripComments: p.IgnoreComments,
	}
}
