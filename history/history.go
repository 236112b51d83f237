// Package history keeps the prompt's submitted-input history and the
// scroll position used by history navigation.
package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLimit bounds the number of stored entries.
const DefaultLimit = 100

// History is an ordered list of submitted inputs (oldest first) plus a
// scroll cursor. The cursor sits past the newest entry when not scrolling;
// the line being edited is kept as a draft while scrolling.
type History struct {
	entries []string
	limit   int

	pos   int
	draft string
}

func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Entries returns a copy of the stored entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Add appends a submitted input and resets scrolling. Empty inputs and
// repeats of the newest entry are skipped.
func (h *History) Add(s string) {
	defer h.Reset()
	if s == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == s {
		return
	}
	h.entries = append(h.entries, s)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append([]string(nil), h.entries[over:]...)
	}
}

// Up returns the next older entry. current is saved as the draft when
// scrolling starts. ok is false at the oldest entry.
func (h *History) Up(current string) (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	if h.pos == len(h.entries) {
		h.draft = current
	}
	h.pos--
	return h.entries[h.pos], true
}

// Down returns the next newer entry, or the draft once past the newest.
// ok is false when not scrolling.
func (h *History) Down() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}

// Reset stops scrolling and drops the draft.
func (h *History) Reset() {
	h.pos = len(h.entries)
	h.draft = ""
}

// Scrolling reports whether an entry older than the draft is shown.
func (h *History) Scrolling() bool { return h.pos < len(h.entries) }

type fileFormat struct {
	Entries []string `yaml:"entries"`
}

// Load reads a history file. A missing file yields an empty history.
func Load(path string, limit int) (*History, error) {
	h := New(limit)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return h, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	for _, e := range f.Entries {
		h.Add(e)
	}
	return h, nil
}

// Save writes the history file, creating its directory.
func (h *History) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	data, err := yaml.Marshal(fileFormat{Entries: h.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
