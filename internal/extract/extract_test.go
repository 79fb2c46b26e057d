package extract

import (
	"strings"
	"testing"
)

func TestToMarkdownWithSelector(t *testing.T) {
	html := `<html><body>
		<nav>Skip this navigation</nav>
		<article id="content"><h1>Heading</h1><p>Body paragraph.</p></article>
	</body></html>`

	got, err := ToMarkdown(strings.NewReader(html), Options{Selector: "#content"})
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	if !strings.Contains(got, "Heading") || !strings.Contains(got, "Body paragraph.") {
		t.Errorf("selected content missing: %q", got)
	}
	if strings.Contains(got, "navigation") {
		t.Errorf("content outside selector leaked: %q", got)
	}
}

func TestToMarkdownSelectorNoMatch(t *testing.T) {
	html := `<html><body><p>text</p></body></html>`
	if _, err := ToMarkdown(strings.NewReader(html), Options{Selector: "#nope"}); err == nil {
		t.Error("unmatched selector should fail")
	}
}

func TestToMarkdownIncludeAll(t *testing.T) {
	html := `<html><body><h2>Section</h2><p>Some <strong>bold</strong> text.</p></body></html>`

	got, err := ToMarkdown(strings.NewReader(html), Options{IncludeAll: true})
	if err != nil {
		t.Fatalf("ToMarkdown: %v", err)
	}
	if !strings.Contains(got, "## Section") {
		t.Errorf("heading not converted: %q", got)
	}
	if !strings.Contains(got, "**bold**") {
		t.Errorf("bold not converted: %q", got)
	}
	if strings.Contains(got, "<p>") || strings.Contains(got, "<strong>") {
		t.Errorf("HTML tags survived: %q", got)
	}
}
