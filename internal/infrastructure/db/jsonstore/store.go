// Package jsonstore implements the file-backed document store: one JSON file
// holding every collection and ID counter, mutated only through whole-file
// load-mutate-save cycles.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/questlog/questlog/internal/api/metrics"
)

// ErrCorrupt is returned when the store file is missing or does not hold a
// valid document. There is no auto-repair and no default-document fallback.
var ErrCorrupt = errors.New("store file missing or corrupt")

// Store is bound to a single file path. A process-wide mutex serializes the
// load-mutate-save cycle, so concurrent in-process writers cannot lose
// updates. It is still not safe for concurrent multi-process writers.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads and deserializes the entire document.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save serializes the full document and replaces the file.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs one load-mutate-save cycle under the store lock. When fn
// returns an error the file is left untouched and the error is passed through.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// View runs fn against a freshly loaded document without writing back.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

func (s *Store) load() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &doc, nil
}

// save writes the whole document through a temp file and rename, so a crash
// mid-write never leaves a half-written store behind. The document stays
// pretty-printed to keep the file inspectable by hand.
func (s *Store) save(doc *Document) error {
	start := time.Now()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}

	metrics.StoreSaveDuration.Observe(time.Since(start).Seconds())
	return nil
}
