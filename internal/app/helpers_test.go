package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	gitlib "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/volnita/volnita/internal/app/services"
	"github.com/volnita/volnita/internal/config"
	"github.com/volnita/volnita/internal/git"
	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/theme"
)

// newRepo creates a repository with one commit per message, oldest first.
func newRepo(t *testing.T, messages ...string) (string, []plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()
	repo, err := gitlib.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://example.com/" + filepath.Base(dir) + ".git"},
	})
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	hashes := make([]plumbing.Hash, 0, len(messages))
	when := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, msg := range messages {
		h, err := wt.Commit(msg, &gitlib.CommitOptions{
			AllowEmptyCommits: true,
			Author: &object.Signature{
				Name:  "Test Author",
				Email: "test@example.com",
				When:  when.Add(time.Duration(i) * time.Hour),
			},
		})
		require.NoError(t, err)
		hashes = append(hashes, h)
	}
	return dir, hashes
}

func newStore(t *testing.T, descs ...models.RepositoryDescriptor) *services.RecentStore {
	t.Helper()
	store := services.NewRecentStore(filepath.Join(t.TempDir(), "recent.toml"))
	for i := len(descs) - 1; i >= 0; i-- {
		store.Merge(descs[i])
	}
	return store
}

func newTestModel(t *testing.T, store *services.RecentStore, backend git.Backend, initial string) *Model {
	t.Helper()
	if backend == nil {
		backend = git.NewNativeBackend()
	}
	return NewModel(config.DefaultConfig(), backend, store, theme.Dracula(), initial)
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// brokenBackend fails to open every path.
type brokenBackend struct{}

func (brokenBackend) Open(path string) (git.Repository, error) {
	return nil, errors.New("gone")
}

// stubBackend opens every path as repo.
type stubBackend struct {
	repo git.Repository
}

func (b stubBackend) Open(string) (git.Repository, error) {
	return b.repo, nil
}

// orphanRepo has a HEAD commit whose parent cannot be read.
type orphanRepo struct {
	root string
}

func (r *orphanRepo) Root() string { return r.root }

func (r *orphanRepo) Head() (*git.Commit, error) {
	return &git.Commit{
		Hash:         "head",
		ParentHashes: []string{"missing"},
		Author:       git.Signature{Name: "Test Author"},
		Message:      "head",
	}, nil
}

func (r *orphanRepo) Parent(*git.Commit) (*git.Commit, error) {
	return nil, errors.New("object not found")
}

func (r *orphanRepo) RemoteURL(string) (string, bool) { return "", false }
func (r *orphanRepo) RemoteNames() []string           { return nil }
