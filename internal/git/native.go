package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	log "github.com/volnita/volnita/internal/log"
)

// NativeBackend opens repositories with go-git.
type NativeBackend struct{}

// NewNativeBackend returns the go-git backed implementation.
func NewNativeBackend() *NativeBackend {
	return &NativeBackend{}
}

// Open opens the repository containing path. Parent directories are searched
// for a .git entry.
func (b *NativeBackend) Open(path string) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("open repository: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}

	root := abs
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	} else if !errors.Is(err, gitlib.ErrIsBareRepository) {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}

	log.Debug("repository opened", "path", abs, "root", root)
	return &nativeRepository{repo: repo, root: root}, nil
}

type nativeRepository struct {
	repo *gitlib.Repository
	root string
}

func (r *nativeRepository) Root() string {
	return r.root
}

func (r *nativeRepository) Head() (*Commit, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoHead, err)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoHead, err)
	}
	return fromObject(commit), nil
}

func (r *nativeRepository) Parent(c *Commit) (*Commit, error) {
	if c == nil || len(c.ParentHashes) == 0 {
		return nil, nil
	}
	parent, err := r.repo.CommitObject(plumbing.NewHash(c.ParentHashes[0]))
	if err != nil {
		return nil, fmt.Errorf("read parent %s: %w", c.ParentHashes[0], err)
	}
	return fromObject(parent), nil
}

func (r *nativeRepository) RemoteURL(name string) (string, bool) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", false
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", false
	}
	return urls[0], true
}

func (r *nativeRepository) RemoteNames() []string {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	sort.Strings(names)
	return names
}

func fromObject(c *object.Commit) *Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, h := range c.ParentHashes {
		parents = append(parents, h.String())
	}
	return &Commit{
		Hash:         c.Hash.String(),
		ParentHashes: parents,
		Author: Signature{
			Name:  c.Author.Name,
			Email: c.Author.Email,
			When:  c.Author.When,
		},
		Message: c.Message,
	}
}
