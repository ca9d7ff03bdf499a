package screen

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/volnita/volnita/internal/git"
)

type fakeRepo struct {
	root    string
	remotes map[string]string
}

func (r *fakeRepo) Root() string { return r.root }
func (r *fakeRepo) Head() (*git.Commit, error) { return nil, git.ErrNoHead }
func (r *fakeRepo) Parent(*git.Commit) (*git.Commit, error) { return nil, nil }

func (r *fakeRepo) RemoteURL(name string) (string, bool) {
	url, ok := r.remotes[name]
	return url, ok
}

func (r *fakeRepo) RemoteNames() []string {
	names := make([]string, 0, len(r.remotes))
	for name := range r.remotes {
		names = append(names, name)
	}
	return names
}

// fakeBackend opens any path listed in repos.
type fakeBackend struct {
	repos  map[string]*fakeRepo
	opened []string
}

func (b *fakeBackend) Open(path string) (git.Repository, error) {
	b.opened = append(b.opened, path)
	if r, ok := b.repos[path]; ok {
		return r, nil
	}
	return nil, errors.New("repository does not exist")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends one key per rune.
func typeText(t *testing.T, s interface{ Update(tea.KeyMsg) LoopSignal }, text string) {
	t.Helper()
	for _, r := range text {
		if sig := s.Update(runes(string(r))); sig != Continue {
			t.Fatalf("typing %q terminated the screen", text)
		}
	}
}
