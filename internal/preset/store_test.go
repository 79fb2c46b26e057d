package preset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if _, err := s.Get("default"); err != nil {
		t.Errorf("missing file should still provide the default preset: %v", err)
	}
}

func TestLoadStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `presets:
  draft:
    words-per-page: 250
    count-citekeys-as-words: true
    ignore-comments: true
    show:
      words: true
      pages: true
  broken:
    words-per-page: -5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	draft, err := s.Get("draft")
	if err != nil {
		t.Fatalf("Get(draft): %v", err)
	}
	if draft.Name != "draft" {
		t.Errorf("preset name = %q, want draft", draft.Name)
	}
	if draft.WordsPerPage != 250 {
		t.Errorf("wordsPerPage = %v, want 250", draft.WordsPerPage)
	}
	if !draft.CountCitekeysAsWords || !draft.IgnoreComments {
		t.Errorf("policy flags not loaded: %+v", draft)
	}
	if !draft.Show.Words || !draft.Show.Pages || draft.Show.Lines {
		t.Errorf("visibility not loaded: %+v", draft.Show)
	}

	broken, err := s.Get("broken")
	if err != nil {
		t.Fatalf("Get(broken): %v", err)
	}
	if broken.WordsPerPage != DefaultWordsPerPage {
		t.Errorf("invalid divisor not clamped: %v", broken.WordsPerPage)
	}

	if _, err := s.Get("missing"); err == nil {
		t.Error("Get on unknown preset should fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte("presets: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed YAML should fail")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")

	s := NewStore()
	custom := Default()
	custom.Name = "novel"
	custom.WordsPerPage = 250
	custom.IgnoreWikiLinks = true
	s.Put(custom)

	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := loaded.Get("novel")
	if err != nil {
		t.Fatalf("Get(novel): %v", err)
	}
	if got.WordsPerPage != 250 || !got.IgnoreWikiLinks {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	custom := Default()
	custom.Name = "tmp"
	s.Put(custom)

	if err := s.Remove("tmp"); err != nil {
		t.Errorf("Remove(tmp): %v", err)
	}
	if err := s.Remove("tmp"); err == nil {
		t.Error("second Remove should fail")
	}
	if err := s.Remove("default"); err == nil {
		t.Error("removing the default preset should fail")
	}
}

func TestStoreNames(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"zeta", "alpha"} {
		p := Default()
		p.Name = name
		s.Put(p)
	}

	names := s.Names()
	want := []string{"alpha", "default", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
