// Package models defines the data objects shared across volnita packages.
package models

import (
	"strings"
	"time"
)

// RepositoryDescriptor identifies a repository for listing and reopening.
// Path is the natural key when deduplicating remembered repositories.
type RepositoryDescriptor struct {
	Path    string `toml:"path"`
	Name    string `toml:"name"`
	RepoURL string `toml:"repo_url"`
}

// CommitRecord is a snapshot of one history entry taken at walk time.
type CommitRecord struct {
	ID         string
	Message    string
	AuthorName string
	When       time.Time
}

// ShortID returns the abbreviated commit identifier.
func (c CommitRecord) ShortID() string {
	if len(c.ID) <= ShortIDLength {
		return c.ID
	}
	return c.ID[:ShortIDLength]
}

// Subject returns the first line of the commit message.
func (c CommitRecord) Subject() string {
	subject, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	return strings.TrimSpace(subject)
}

const (
	// ShortIDLength is the number of hex digits shown for abbreviated ids.
	ShortIDLength = 8
	// RecentFilename stores the remembered repositories.
	RecentFilename = "recent.toml"
	// ConfigFilename is the YAML application configuration.
	ConfigFilename = "config.yaml"
	// AppName names the config directory and the binary.
	AppName = "volnita"
)
