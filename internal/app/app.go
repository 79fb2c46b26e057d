// Package app contains the core application logic for the mdtally CLI.
// It wires sources, presets, and the metric pipeline together, separated
// from flag-parsing concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/mdtally/mdtally/internal/extract"
	"github.com/mdtally/mdtally/internal/fetch"
	"github.com/mdtally/mdtally/internal/preset"
	"github.com/mdtally/mdtally/internal/spinner"
)

// Config holds all configuration options for one mdtally run.
type Config struct {
	Sources      []string // file paths, URLs, or "-" for stdin
	ConfigPath   string   // YAML preset store; may not exist
	PresetName   string   // preset to compute under
	Selector     string   // CSS selector for HTML sources
	IncludeAll   bool     // skip readability filtering for HTML sources
	OutputFormat OutputFormat
	TopKeywords  int // top-N keyword ranking; 0 disables
	Quiet        bool
	Debug        bool
}

// Run executes the main application logic:
//  1. load the preset store and register a compute action per preset
//  2. fetch each source (converting HTML to Markdown when needed)
//  3. invoke the selected preset's action per document and render
//
// Per-source fetch failures warn and continue; Run only fails when nothing
// could be processed at all.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	store, err := preset.Load(cfg.ConfigPath)
	if err != nil {
		return "", err
	}
	if _, err := store.Get(cfg.PresetName); err != nil {
		return "", err
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return "", err
	}

	// the registry owns preset-to-action bindings; each action computes
	// against whichever document was fetched last (last-write-wins, the
	// display contract for overlapping recompute requests)
	registry := preset.NewRegistry(store)
	var current document
	var rendered []string
	for _, name := range store.Names() {
		if err := registry.Register(name, func(p preset.Preset) error {
			out, err := renderer.render(current, p)
			if err != nil {
				return err
			}
			rendered = append(rendered, out)
			return nil
		}); err != nil {
			return "", err
		}
	}

	for _, source := range cfg.Sources {
		text, err := loadSource(ctx, source, cfg)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		current = document{source: source, text: text}
		if err := registry.Invoke(cfg.PresetName); err != nil {
			return "", err
		}
	}

	if len(rendered) == 0 {
		return "", fmt.Errorf("no content processed from any source")
	}
	return strings.Join(rendered, "\n\n"), nil
}

// document is one fetched source ready for computation.
type document struct {
	source string
	text   string
}

// loadSource fetches a single source and normalizes it to Markdown text.
// URL sources and local .html/.htm files go through HTML extraction;
// everything else is used verbatim.
func loadSource(ctx context.Context, source string, cfg Config) (string, error) {
	reader, err := fetch.Open(ctx, source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	kind := fetch.Classify(source)
	isHTML := kind == fetch.URL ||
		strings.HasSuffix(source, ".html") || strings.HasSuffix(source, ".htm")

	if !isHTML {
		data, err := io.ReadAll(reader)
		if err != nil {
			return "", fmt.Errorf("failed to read source %q: %w", source, err)
		}
		return string(data), nil
	}

	var baseURL *url.URL
	if kind == fetch.URL {
		baseURL, _ = url.Parse(source) // nil base on parse failure is fine

		if !cfg.Quiet {
			spin := spinner.New(os.Stderr, "Fetching "+source)
			spin.Start(ctx)
			defer spin.Stop()
		}
	}

	slog.Debug("Converting HTML source", "source", source, "selector", cfg.Selector)
	markdown, err := extract.ToMarkdown(reader, extract.Options{
		Selector:   cfg.Selector,
		IncludeAll: cfg.IncludeAll,
		BaseURL:    baseURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract content from %q: %w", source, err)
	}
	return markdown, nil
}
