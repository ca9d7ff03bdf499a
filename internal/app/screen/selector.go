package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/volnita/volnita/internal/app/commands"
	"github.com/volnita/volnita/internal/app/services"
	"github.com/volnita/volnita/internal/app/state"
	"github.com/volnita/volnita/internal/git"
	"github.com/volnita/volnita/internal/log"
	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/theme"
	"github.com/volnita/volnita/internal/utils"
)

// selector chrome: title, notice, table header + border, editor header + box, footer.
const selectorChrome = 10

// CmdForget removes a remembered repository.
const CmdForget = "forget"

// SelectorScreen lets the user pick a remembered repository or type a path.
type SelectorScreen struct {
	// Selected is set when the screen terminates with a repository.
	// It stays nil when the user aborted.
	Selected *models.RepositoryDescriptor

	store    *services.RecentStore
	backend  git.Backend
	remote   string
	list     *state.List[models.RepositoryDescriptor]
	editor   *LineEditor
	commands *commands.Table
	keys     KeyMap
	thm      *theme.Theme
	view     state.ViewState

	notice    string
	noticeErr bool
}

// NewSelectorScreen builds a selector over the entries of store. The editor
// starts in Editing mode so a path can be typed straight away.
func NewSelectorScreen(store *services.RecentStore, backend git.Backend, remote string, thm *theme.Theme) *SelectorScreen {
	s := &SelectorScreen{
		store:   store,
		backend: backend,
		remote:  remote,
		keys:    DefaultKeyMap(),
		thm:     thm,
		editor:  NewLineEditor("Open folder", "path to a git repository, or a command", ModeEditing, thm),
		view:    state.ViewState{WindowWidth: defaultWidth, WindowHeight: defaultHeight},
	}
	s.reload()
	s.list.Advance()

	s.commands = commands.New()
	s.commands.Register(CmdForget, "Remove a repository from the list", s.forget)
	s.commands.Register(commands.Help, "List the available commands", func([]string) bool {
		s.SetNotice(s.commands.Usage(), false)
		return true
	})
	return s
}

// Type returns the screen type.
func (s *SelectorScreen) Type() Type {
	return TypeSelector
}

// Editor exposes the line editor.
func (s *SelectorScreen) Editor() *LineEditor {
	return s.editor
}

// List exposes the remembered repositories.
func (s *SelectorScreen) List() *state.List[models.RepositoryDescriptor] {
	return s.list
}

// SetNotice shows msg above the editor until the next key.
func (s *SelectorScreen) SetNotice(msg string, isErr bool) {
	s.notice = msg
	s.noticeErr = isErr
}

// SetSize informs the screen of the terminal dimensions.
func (s *SelectorScreen) SetSize(width, height int) {
	s.view.WindowWidth = width
	s.view.WindowHeight = height
}

// AdvanceSelection moves to the next repository.
func (s *SelectorScreen) AdvanceSelection() {
	s.list.Advance()
}

// RetreatSelection moves to the previous repository.
func (s *SelectorScreen) RetreatSelection() {
	s.list.Retreat()
}

func (s *SelectorScreen) reload() {
	s.list = state.NewList(s.store.Entries())
}

// Update handles keyboard input for the selector.
func (s *SelectorScreen) Update(msg tea.KeyMsg) LoopSignal {
	s.notice = ""

	result, line := s.editor.HandleKey(msg)
	switch result {
	case EditConsumed:
		return Continue
	case EditSubmitted:
		return s.submit(line)
	}

	normal := s.editor.Mode() == ModeNormal
	switch {
	case key.Matches(msg, s.keys.Down), normal && key.Matches(msg, s.keys.VimDown):
		s.AdvanceSelection()
	case key.Matches(msg, s.keys.Up), normal && key.Matches(msg, s.keys.VimUp):
		s.RetreatSelection()
	case normal && key.Matches(msg, s.keys.Accept):
		return s.acceptSelection()
	case normal && key.Matches(msg, s.keys.Quit):
		return Terminate
	}
	return Continue
}

func (s *SelectorScreen) submit(line string) LoopSignal {
	text := strings.TrimSpace(line)
	if text == "" {
		return s.acceptSelection()
	}

	if fields := strings.Fields(text); s.commands.Has(fields[0]) {
		keep, _ := s.commands.Dispatch(text)
		if !keep {
			s.Selected = nil
			return Terminate
		}
		return Continue
	}

	return s.openTyped(text)
}

func (s *SelectorScreen) acceptSelection() LoopSignal {
	d, ok := s.list.Current()
	if !ok {
		s.SetNotice("No repository selected", true)
		return Continue
	}
	s.Selected = &d
	log.Debug("selector accepted remembered repository", "path", d.Path)
	return Terminate
}

func (s *SelectorScreen) openTyped(text string) LoopSignal {
	path, err := utils.ExpandPath(text)
	if err != nil {
		path = text
	}
	repo, err := s.backend.Open(path)
	if err != nil {
		log.Debug("selector failed to open typed path", "path", path, "error", err)
		s.SetNotice(fmt.Sprintf("Cannot open %s: %v", path, err), true)
		s.editor.Begin(text)
		return Continue
	}
	d := git.Describe(repo, s.remote)
	s.Selected = &d
	log.Debug("selector opened typed path", "path", d.Path)
	return Terminate
}

// forget removes the named path, or the selected entry when no argument is
// given, and persists the store. The path is taken verbatim from the
// submitted line so inner whitespace survives.
func (s *SelectorScreen) forget([]string) bool {
	line, _ := s.editor.Last()
	path := commands.Remainder(line)
	if path == "" {
		d, ok := s.list.Current()
		if !ok {
			s.SetNotice("Nothing to forget", true)
			return true
		}
		path = d.Path
	}
	if !s.store.Forget(path) {
		s.SetNotice(fmt.Sprintf("%s is not in the list", path), true)
		return true
	}
	if err := s.store.Save(); err != nil {
		log.Warn("failed to save recent repositories", "error", err)
	}

	prev, _ := s.list.Selected()
	s.reload()
	if !s.list.Select(min(prev, s.list.Len()-1)) {
		s.list.Advance()
	}
	s.SetNotice(fmt.Sprintf("Forgot %s", path), false)
	return true
}

// View renders the selector.
func (s *SelectorScreen) View() string {
	width := s.view.WindowWidth
	height := s.view.ListHeight(selectorChrome)

	var body string
	if s.list.Len() == 0 {
		body = emptyView(s.thm, "No remembered repositories. Type a path below.")
	} else {
		start, end := s.list.Window(height)
		rows := make([][]string, 0, end-start)
		for _, d := range s.list.Items()[start:end] {
			rows = append(rows, []string{d.Name, d.Path, d.RepoURL})
		}
		selected, ok := s.list.Selected()
		if !ok {
			selected = -1
		}
		body = table{
			thm:      s.thm,
			headers:  []string{"Name", "Path", "URL"},
			weights:  []int{2, 4, 4},
			rows:     rows,
			start:    start,
			selected: selected,
			width:    width,
		}.View()
	}

	footer := helpLine(s.keys.Up, s.keys.Down, s.keys.Accept, s.keys.Cancel, s.keys.ForceQuit)
	if s.editor.Mode() == ModeNormal {
		footer = helpLine(s.keys.VimDown, s.keys.VimUp, s.keys.Accept, s.keys.Edit, s.keys.Quit)
	}

	sections := []string{
		titleView(s.thm, "volnita", "Select a repository", width),
		body,
	}
	if n := noticeView(s.thm, s.notice, s.noticeErr, width); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, s.editor.View(width), footerView(s.thm, footer, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
