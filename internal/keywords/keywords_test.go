package keywords

import (
	"testing"
)

func TestTop(t *testing.T) {
	text := "Running tests. Run the tests again. Tests keep running; walk away."

	got := Top(text, 2)
	if len(got) != 2 {
		t.Fatalf("Top returned %d keywords, want 2", len(got))
	}

	// "running", "run" and "tests" stem together with their variants
	if got[0].Term != "test" && got[0].Term != "run" {
		t.Errorf("unexpected top term %q", got[0].Term)
	}
	if got[0].Count < got[1].Count {
		t.Errorf("ranking not descending: %+v", got)
	}
}

func TestTopFiltersStopwordsAndShortTokens(t *testing.T) {
	text := "the and for a an it to of in"
	if got := Top(text, 5); len(got) != 0 {
		t.Errorf("stopword-only text produced keywords: %+v", got)
	}
}

func TestTopDeterministicTieBreak(t *testing.T) {
	text := "zebra apple zebra apple"
	got := Top(text, 2)
	if len(got) != 2 {
		t.Fatalf("Top returned %d keywords, want 2", len(got))
	}
	if got[0].Term != "appl" || got[1].Term != "zebra" {
		t.Errorf("tie not broken alphabetically: %+v", got)
	}
}

func TestTopEdgeCases(t *testing.T) {
	if got := Top("", 5); got != nil {
		t.Errorf("Top on empty text = %+v, want nil", got)
	}
	if got := Top("some words here", 0); got != nil {
		t.Errorf("Top with n=0 = %+v, want nil", got)
	}
	if got := Top("solitary", 10); len(got) != 1 {
		t.Errorf("Top should cap at available terms: %+v", got)
	}
}
