// Package services holds the persistence helpers used by the TUI.
package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/volnita/volnita/internal/log"
	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/utils"
)

const defaultFilePerms = 0o600

type recentFile struct {
	Repositories []models.RepositoryDescriptor `toml:"repositories"`
}

// RecentStore is the ordered list of previously opened repositories.
// Entries are unique by path, most recently merged first.
type RecentStore struct {
	path    string
	entries []models.RepositoryDescriptor
}

// NewRecentStore returns an empty store persisted at path.
func NewRecentStore(path string) *RecentStore {
	return &RecentStore{path: path}
}

// LoadRecentStore reads the store at path. A missing or unreadable file
// yields an empty store; the cause is logged.
func LoadRecentStore(path string) *RecentStore {
	store := NewRecentStore(path)

	// #nosec G304 -- path comes from the user's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn("read recent repositories", "path", path, "error", err)
		}
		return store
	}

	var payload recentFile
	if _, err := toml.Decode(string(data), &payload); err != nil {
		log.Warn("parse recent repositories, starting empty", "path", path, "error", err)
		return store
	}

	// Hand-edited files may repeat a path; the first occurrence wins.
	for i := len(payload.Repositories) - 1; i >= 0; i-- {
		d := payload.Repositories[i]
		if d.Path == "" {
			continue
		}
		store.Merge(d)
	}
	log.Debug("loaded recent repositories", "path", path, "count", len(store.entries))
	return store
}

// Path returns the file backing the store.
func (s *RecentStore) Path() string {
	return s.path
}

// Entries returns a copy of the stored descriptors.
func (s *RecentStore) Entries() []models.RepositoryDescriptor {
	out := make([]models.RepositoryDescriptor, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of stored descriptors.
func (s *RecentStore) Len() int {
	return len(s.entries)
}

// Merge inserts d, replacing any entry with the same path. The merged
// descriptor moves to the front; the others keep their relative order.
func (s *RecentStore) Merge(d models.RepositoryDescriptor) {
	byPath := make(map[string]models.RepositoryDescriptor, len(s.entries)+1)
	order := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		if _, seen := byPath[e.Path]; !seen {
			order = append(order, e.Path)
		}
		byPath[e.Path] = e
	}
	byPath[d.Path] = d

	rebuilt := make([]models.RepositoryDescriptor, 0, len(byPath))
	rebuilt = append(rebuilt, d)
	for _, p := range order {
		if p == d.Path {
			continue
		}
		rebuilt = append(rebuilt, byPath[p])
	}
	s.entries = rebuilt
}

// Forget removes the entry for path and reports whether one existed.
func (s *RecentStore) Forget(path string) bool {
	for i, e := range s.entries {
		if e.Path == path {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Save writes the store to disk, replacing the previous file.
func (s *RecentStore) Save() error {
	if s.path == "" {
		return errors.New("recent store has no path")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), utils.DefaultDirPerms); err != nil {
		return fmt.Errorf("create recent store directory: %w", err)
	}

	var buf bytes.Buffer
	payload := recentFile{Repositories: s.entries}
	if payload.Repositories == nil {
		payload.Repositories = []models.RepositoryDescriptor{}
	}
	if err := toml.NewEncoder(&buf).Encode(payload); err != nil {
		return fmt.Errorf("encode recent repositories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".recent-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write recent repositories: %w", err)
	}
	if err := tmp.Chmod(defaultFilePerms); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod recent repositories: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close recent repositories: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace recent repositories: %w", err)
	}
	log.Debug("saved recent repositories", "path", s.path, "count", len(s.entries))
	return nil
}
