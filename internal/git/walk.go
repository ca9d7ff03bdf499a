package git

import (
	"fmt"
	"iter"
	"path/filepath"
	"unicode/utf8"

	"github.com/volnita/volnita/internal/models"
)

// DefaultRemote is the remote consulted for a repository URL.
const DefaultRemote = "origin"

// Walk yields the first-parent history of repo starting at HEAD.
//
// The sequence ends after the root commit, or after yielding a single error.
// Ranging over it again starts a fresh walk from HEAD.
func Walk(repo Repository) iter.Seq2[models.CommitRecord, error] {
	return func(yield func(models.CommitRecord, error) bool) {
		c, err := repo.Head()
		if err != nil {
			yield(models.CommitRecord{}, err)
			return
		}
		for c != nil {
			rec, err := newRecord(c)
			if err != nil {
				yield(models.CommitRecord{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
			c, err = repo.Parent(c)
			if err != nil {
				yield(models.CommitRecord{}, err)
				return
			}
		}
	}
}

// Collect drains seq. Records are all-or-nothing: on the first error the
// partial result is discarded.
func Collect(seq iter.Seq2[models.CommitRecord, error]) ([]models.CommitRecord, error) {
	var out []models.CommitRecord
	for rec, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// History walks and drains the history of repo.
func History(repo Repository) ([]models.CommitRecord, error) {
	return Collect(Walk(repo))
}

func newRecord(c *Commit) (models.CommitRecord, error) {
	if !utf8.ValidString(c.Message) {
		return models.CommitRecord{}, fmt.Errorf("%w: commit %s has no readable message", ErrMalformedCommit, c.Hash)
	}
	if !utf8.ValidString(c.Author.Name) {
		return models.CommitRecord{}, fmt.Errorf("%w: commit %s has no readable author name", ErrMalformedCommit, c.Hash)
	}
	return models.CommitRecord{
		ID:         c.Hash,
		Message:    c.Message,
		AuthorName: c.Author.Name,
		When:       c.Author.When,
	}, nil
}

// Describe builds the descriptor remembered for repo. The URL comes from the
// named remote, falling back to the first configured remote.
func Describe(repo Repository, remote string) models.RepositoryDescriptor {
	if remote == "" {
		remote = DefaultRemote
	}
	root := repo.Root()
	name := filepath.Base(root)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "UNNAMED"
	}

	url, ok := repo.RemoteURL(remote)
	if !ok {
		for _, other := range repo.RemoteNames() {
			if url, ok = repo.RemoteURL(other); ok {
				break
			}
		}
	}

	return models.RepositoryDescriptor{
		Path:    root,
		Name:    name,
		RepoURL: url,
	}
}
