// Package git reads repository history for volnita.
package git

import (
	"errors"
	"time"
)

var (
	// ErrNoHead is returned when HEAD does not resolve to a commit.
	ErrNoHead = errors.New("HEAD does not resolve to a commit")
	// ErrMalformedCommit is returned when a commit lacks a readable message or author name.
	ErrMalformedCommit = errors.New("malformed commit")
)

// Signature identifies who made a commit and when.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Commit is the backend-neutral view of a commit object.
type Commit struct {
	Hash         string
	ParentHashes []string
	Author       Signature
	Message      string
}

// Backend opens repositories.
//
// The default implementation uses go-git; tests substitute in-memory fakes.
type Backend interface {
	Open(path string) (Repository, error)
}

// Repository is an opened, read-only repository handle.
type Repository interface {
	// Root returns the absolute path of the working tree (or the git dir for bare repositories).
	Root() string
	// Head returns the commit HEAD points at.
	Head() (*Commit, error)
	// Parent returns the first parent of c, or nil when c is a root commit.
	Parent(c *Commit) (*Commit, error)
	// RemoteURL returns the first URL configured for the named remote.
	RemoteURL(name string) (string, bool)
	// RemoteNames returns the configured remote names in sorted order.
	RemoteNames() []string
}
