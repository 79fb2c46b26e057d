package preset

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// storeFile is the on-disk shape of a preset store.
type storeFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Store holds the named presets available to the host. The core never sees
// the store; it receives a single resolved Preset per computation.
type Store struct {
	presets map[string]Preset
}

// NewStore returns a store containing only the built-in default preset.
func NewStore() *Store {
	return &Store{presets: map[string]Preset{"default": Default()}}
}

// Load reads a YAML preset store from path. A missing file is not an error;
// it yields a store with just the built-in default. Loaded presets with a
// non-positive or non-finite words-per-page divisor are clamped to the
// default here, so a degenerate divisor never reaches the core.
func Load(path string) (*Store, error) {
	s := NewStore()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("No preset file found, using built-in default", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %q: %w", path, err)
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset file %q: %w", path, err)
	}

	for name, p := range file.Presets {
		p.Name = name
		if p.WordsPerPage <= 0 || math.IsInf(p.WordsPerPage, 0) || math.IsNaN(p.WordsPerPage) {
			slog.Debug("Clamping invalid words-per-page", "preset", name, "value", p.WordsPerPage)
			p.WordsPerPage = DefaultWordsPerPage
		}
		s.presets[name] = p
	}

	slog.Debug("Loaded preset store", "path", path, "presetCount", len(s.presets))
	return s, nil
}

// Save writes the store to path as YAML.
func (s *Store) Save(path string) error {
	data, err := yaml.Marshal(storeFile{Presets: s.presets})
	if err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preset file %q: %w", path, err)
	}
	return nil
}

// Get returns the named preset.
func (s *Store) Get(name string) (Preset, error) {
	p, ok := s.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// Put adds or replaces a named preset.
func (s *Store) Put(p Preset) {
	if p.Name == "" {
		p.Name = "default"
	}
	s.presets[p.Name] = p
}

// Remove deletes a named preset. The built-in default cannot be removed.
func (s *Store) Remove(name string) error {
	if name == "default" {
		return fmt.Errorf("cannot remove the default preset")
	}
	if _, ok := s.presets[name]; !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	delete(s.presets, name)
	return nil
}

// Names returns the preset names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
