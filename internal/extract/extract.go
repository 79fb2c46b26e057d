// Package extract converts HTML sources to Markdown so the metric pipeline
// only ever sees one input format.
package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Options selects how the HTML is reduced before conversion.
type Options struct {
	// Selector, when non-empty, converts only the elements matching this
	// CSS selector. Overrides IncludeAll.
	Selector string

	// IncludeAll converts the whole page without readability filtering.
	IncludeAll bool

	// BaseURL gives readability the page context for resolving relative
	// links; may be nil.
	BaseURL *url.URL
}

// ToMarkdown extracts content from HTML and converts it to Markdown. By
// default the readability algorithm isolates the main article content first,
// so navigation and boilerplate never inflate the counts.
func ToMarkdown(content io.Reader, opts Options) (string, error) {
	switch {
	case opts.Selector != "":
		return fromSelector(content, opts.Selector)
	case opts.IncludeAll:
		return fromWholePage(content)
	default:
		return fromArticle(content, opts.BaseURL)
	}
}

func fromArticle(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}
	return convert(article.Content)
}

func fromSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements match selector %q", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		html, err := s.Html()
		if err != nil {
			return
		}
		// keep the wrapping tag so block structure survives conversion
		tag := goquery.NodeName(s)
		parts = append(parts, fmt.Sprintf("<%s>%s</%s>", tag, html, tag))
	})
	if len(parts) == 0 {
		return "", fmt.Errorf("failed to extract HTML from selection")
	}

	return convert(strings.Join(parts, "\n"))
}

func fromWholePage(content io.Reader) (string, error) {
	html, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}
	return convert(string(html))
}

func convert(html string) (string, error) {
	converter := md.NewConverter("", true, nil)

	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	cleaned := strings.TrimSpace(markdown)
	cleaned = strings.ReplaceAll(cleaned, "\n\n\n", "\n\n")
	return cleaned, nil
}
