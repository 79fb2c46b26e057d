package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		source   string
		expected Kind
	}{
		{"-", Stdin},
		{"http://example.com", URL},
		{"https://example.com/page", URL},
		{"notes.md", File},
		{"/abs/path/doc.md", File},
		{"httpish-name.md", File},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := Classify(tt.source); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.source, got, tt.expected)
			}
		})
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("file content"), 0o644); err != nil {
		t.Fatal(err)
	}

	reader, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "file content" {
		t.Errorf("content = %q, want %q", data, "file content")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatal("Open on missing file should fail")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOpenURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "mdtally/") {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		io.WriteString(w, "remote body")
	}))
	defer server.Close()

	reader, err := Open(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "remote body" {
		t.Errorf("content = %q, want %q", data, "remote body")
	}
}

func TestOpenURLNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Open(context.Background(), server.URL); err == nil {
		t.Error("Open on 404 should fail")
	}
}

func TestOpenURLDeclaredTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "99999999999")
	}))
	defer server.Close()

	if _, err := Open(context.Background(), server.URL); err == nil {
		t.Error("Open on oversized Content-Length should fail")
	}
}

func TestCappedReaderEnforcesLimit(t *testing.T) {
	underlying := io.NopCloser(strings.NewReader(strings.Repeat("x", 100)))
	capped := &cappedReader{ReadCloser: underlying, remaining: 10, source: "test"}

	data := make([]byte, 64)
	n, err := capped.Read(data)
	if err != nil && err != io.EOF {
		t.Fatalf("first read: %v", err)
	}
	if n != 10 {
		t.Errorf("first read returned %d bytes, want 10", n)
	}

	if _, err := capped.Read(data); err == nil || err == io.EOF {
		t.Errorf("read past budget should fail with a limit error, got %v", err)
	}
}
