// Package jsonstore persists a whole document as a single JSON file.
// Every mutation rewrites the entire file; there is no locking and no
// partial write. Concurrent processes sharing a file may clobber each other.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Store reads and writes one JSON document of type D at a fixed path.
type Store[D any] struct {
	path string
	log  zerolog.Logger
}

// New creates a store for the document at path.
func New[D any](path string, log zerolog.Logger) *Store[D] {
	return &Store[D]{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store[D]) Path() string { return s.path }

// Load reads the document from disk. A missing file yields the zero document.
// An unparsable file is logged and also yields the zero document rather than
// failing; the next Save overwrites whatever was there.
func (s *Store[D]) Load() D {
	var doc D
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("read store file failed, starting empty")
		}
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("store file is corrupt, starting empty")
		var zero D
		return zero
	}
	return doc
}

// Save serializes the whole document and replaces the file via a temp file
// and rename, so readers never observe a half-written document.
func (s *Store[D]) Save(doc D) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), ulid.Make()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
