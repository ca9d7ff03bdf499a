// Package app drives a volnita session: it owns the live screen and builds
// the next one when a screen terminates.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/volnita/volnita/internal/app/screen"
	"github.com/volnita/volnita/internal/app/services"
	"github.com/volnita/volnita/internal/app/state"
	"github.com/volnita/volnita/internal/config"
	"github.com/volnita/volnita/internal/git"
	"github.com/volnita/volnita/internal/log"
	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/theme"
)

// ErrNoRepository is returned when the session ends without any repository
// having been opened.
var ErrNoRepository = errors.New("no repository selected")

// Model is the bubbletea model of a session. Exactly one screen is live at a
// time.
type Model struct {
	config  *config.AppConfig
	backend git.Backend
	store   *services.RecentStore
	thm     *theme.Theme
	keys    screen.KeyMap

	screens *screen.Manager
	view    state.ViewState

	current  *models.RepositoryDescriptor
	opened   bool
	quitting bool
	err      error
}

// NewModel creates the session model. When initialPath opens as a
// repository the session starts in the commit browser, otherwise in the
// repository selector.
func NewModel(cfg *config.AppConfig, backend git.Backend, store *services.RecentStore, thm *theme.Theme, initialPath string) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if thm == nil {
		thm = theme.Dracula()
	}
	m := &Model{
		config:  cfg,
		backend: backend,
		store:   store,
		thm:     thm,
		keys:    screen.DefaultKeyMap(),
		screens: screen.NewManager(),
	}

	if initialPath == "" {
		m.showSelector("")
		return m
	}
	if err := m.openRepository(initialPath); err != nil {
		log.Info("initial path is not a repository, showing selector", "path", initialPath, "error", err)
		m.showSelector(fmt.Sprintf("Cannot open %s: %v", initialPath, err))
	}
	return m
}

// Init implements tea.Model. The session runs no background commands.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Screen returns the live screen.
func (m *Model) Screen() screen.Screen {
	return m.screens.Current()
}

// Repository returns the descriptor of the repository being browsed.
func (m *Model) Repository() (models.RepositoryDescriptor, bool) {
	if m.current == nil {
		return models.RepositoryDescriptor{}, false
	}
	return *m.current, true
}

// Err returns ErrNoRepository when the session ended before any repository
// was opened.
func (m *Model) Err() error {
	return m.err
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.WindowWidth = msg.Width
		m.view.WindowHeight = msg.Height
		if cur := m.screens.Current(); cur != nil {
			cur.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			log.Debug("quit key pressed", "screen", m.screens.Type().String())
			return m.quit()
		}
		cur := m.screens.Current()
		if cur == nil {
			return m.quit()
		}
		if cur.Update(msg) == screen.Continue {
			return m, nil
		}
		return m.transition(cur)
	}
	return m, nil
}

// transition builds the screen following a terminated one.
func (m *Model) transition(done screen.Screen) (tea.Model, tea.Cmd) {
	log.Debug("screen terminated", "screen", done.Type().String())

	switch done.Type() {
	case screen.TypeSelector:
		sel, ok := done.(*screen.SelectorScreen)
		if !ok || sel.Selected == nil {
			return m.quit()
		}
		path := sel.Selected.Path
		if err := m.openRepository(path); err != nil {
			log.Warn("failed to open selected repository", "path", path, "error", err)
			m.showSelector(fmt.Sprintf("Cannot open %s: %v", path, err))
		}
		return m, nil
	default:
		return m.quit()
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if !m.opened {
		m.err = ErrNoRepository
	}
	m.screens.Clear()
	return m, tea.Quit
}

// openRepository opens path, remembers it and switches to the commit browser.
// A repository whose HEAD does not resolve is rejected before it is
// remembered. Other history errors still open the browser, with a notice.
func (m *Model) openRepository(path string) error {
	repo, err := m.backend.Open(path)
	if err != nil {
		return err
	}
	d := git.Describe(repo, m.config.Remote)

	notice := ""
	commits, err := git.History(repo)
	switch {
	case errors.Is(err, git.ErrNoHead):
		return err
	case err != nil:
		log.Warn("failed to read history", "path", d.Path, "error", err)
		notice = fmt.Sprintf("Cannot read history: %v", err)
	}

	m.store.Merge(d)
	if err := m.store.Save(); err != nil {
		log.Warn("failed to save recent repositories", "path", m.store.Path(), "error", err)
	}
	log.Debug("opened repository", "path", d.Path, "commits", len(commits))

	browser := screen.NewBrowserScreen(d, commits, screen.BrowserOptions{
		Theme:         m.thm,
		RelativeDates: m.config.RelativeDates,
		Aliases:       m.config.CommandAliases,
		Notice:        notice,
	})
	m.show(browser)
	m.current = &d
	m.opened = true
	return nil
}

func (m *Model) showSelector(notice string) {
	sel := screen.NewSelectorScreen(m.store, m.backend, m.config.Remote, m.thm)
	if notice != "" {
		sel.SetNotice(notice, true)
	}
	m.show(sel)
}

func (m *Model) show(s screen.Screen) {
	if m.view.WindowWidth > 0 && m.view.WindowHeight > 0 {
		s.SetSize(m.view.WindowWidth, m.view.WindowHeight)
	}
	m.screens.Set(s)
}

// View renders the live screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	cur := m.screens.Current()
	if cur == nil {
		return ""
	}
	return cur.View()
}
