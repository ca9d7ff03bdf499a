package screen

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/volnita/volnita/internal/app/commands"
	"github.com/volnita/volnita/internal/app/state"
	"github.com/volnita/volnita/internal/log"
	"github.com/volnita/volnita/internal/models"
	"github.com/volnita/volnita/internal/theme"
)

// browser chrome: title, notice, table header + border, editor header + box, footer.
const browserChrome = 10

// Browser command names.
const (
	CmdTop    = "top"
	CmdBottom = "bottom"
	CmdFind   = "find"
	CmdCopy   = "copy"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// BrowserOptions configures a BrowserScreen.
type BrowserOptions struct {
	Theme         *theme.Theme
	RelativeDates bool
	Aliases       map[string]string // alias -> command name
	Notice        string            // shown on the first frame
	Now           func() time.Time
}

// BrowserScreen shows the first-parent history of one repository.
type BrowserScreen struct {
	repo     models.RepositoryDescriptor
	list     *state.List[models.CommitRecord]
	editor   *LineEditor
	commands *commands.Table
	keys     KeyMap
	thm      *theme.Theme
	view     state.ViewState

	relativeDates bool
	now           func() time.Time

	notice    string
	noticeErr bool
}

// NewBrowserScreen builds a browser over commits, newest first.
func NewBrowserScreen(repo models.RepositoryDescriptor, commits []models.CommitRecord, opts BrowserOptions) *BrowserScreen {
	thm := opts.Theme
	if thm == nil {
		thm = theme.Dracula()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &BrowserScreen{
		repo:          repo,
		list:          state.NewList(commits),
		keys:          DefaultKeyMap(),
		thm:           thm,
		editor:        NewLineEditor("Command", "quit, top, bottom, find <text>, copy, help", ModeNormal, thm),
		view:          state.ViewState{WindowWidth: defaultWidth, WindowHeight: defaultHeight},
		relativeDates: opts.RelativeDates,
		now:           now,
	}
	if opts.Notice != "" {
		s.SetNotice(opts.Notice, true)
	}
	s.list.Advance()
	s.registerCommands(opts.Aliases)
	return s
}

func (s *BrowserScreen) registerCommands(aliases map[string]string) {
	s.commands = commands.New()
	s.commands.Register(CmdTop, "Jump to the newest commit", func([]string) bool {
		s.list.First()
		return true
	})
	s.commands.Register(CmdBottom, "Jump to the oldest commit", func([]string) bool {
		s.list.Last()
		return true
	})
	s.commands.Register(CmdFind, "Select the best match for <text>", s.find)
	s.commands.Register(CmdCopy, "Copy the selected commit id", s.copyID)
	s.commands.Register(commands.Help, "List the available commands", func([]string) bool {
		s.SetNotice(s.commands.Usage(), false)
		return true
	})

	builtins := make(map[string]bool)
	for _, name := range s.commands.Names() {
		builtins[name] = true
	}
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	// Aliases resolve against built-in commands only, never other aliases.
	for _, alias := range names {
		target := aliases[alias]
		if builtins[alias] {
			log.Debug("ignoring alias shadowing a command", "alias", alias)
			continue
		}
		if !builtins[target] {
			log.Debug("ignoring alias to unknown command", "alias", alias, "target", target)
			continue
		}
		s.commands.Register(alias, "Alias for "+target, func(args []string) bool {
			keep, _ := s.commands.Dispatch(strings.Join(append([]string{target}, args...), " "))
			return keep
		})
	}
}

// Type returns the screen type.
func (s *BrowserScreen) Type() Type {
	return TypeBrowser
}

// Repository returns the descriptor of the browsed repository.
func (s *BrowserScreen) Repository() models.RepositoryDescriptor {
	return s.repo
}

// Editor exposes the command line editor.
func (s *BrowserScreen) Editor() *LineEditor {
	return s.editor
}

// List exposes the commit list.
func (s *BrowserScreen) List() *state.List[models.CommitRecord] {
	return s.list
}

// Commands exposes the command table.
func (s *BrowserScreen) Commands() *commands.Table {
	return s.commands
}

// SetNotice shows msg above the editor until the next key.
func (s *BrowserScreen) SetNotice(msg string, isErr bool) {
	s.notice = msg
	s.noticeErr = isErr
}

// SetSize informs the screen of the terminal dimensions.
func (s *BrowserScreen) SetSize(width, height int) {
	s.view.WindowWidth = width
	s.view.WindowHeight = height
}

// AdvanceSelection moves to the next (older) commit.
func (s *BrowserScreen) AdvanceSelection() {
	s.list.Advance()
}

// RetreatSelection moves to the previous (newer) commit.
func (s *BrowserScreen) RetreatSelection() {
	s.list.Retreat()
}

// Update handles keyboard input for the browser.
func (s *BrowserScreen) Update(msg tea.KeyMsg) LoopSignal {
	s.notice = ""

	result, line := s.editor.HandleKey(msg)
	switch result {
	case EditConsumed:
		return Continue
	case EditSubmitted:
		keep, matched := s.commands.Dispatch(line)
		if matched && !keep {
			return Terminate
		}
		return Continue
	}

	normal := s.editor.Mode() == ModeNormal
	switch {
	case key.Matches(msg, s.keys.Down), normal && key.Matches(msg, s.keys.VimDown):
		s.AdvanceSelection()
	case key.Matches(msg, s.keys.Up), normal && key.Matches(msg, s.keys.VimUp):
		s.RetreatSelection()
	case normal && key.Matches(msg, s.keys.Top):
		s.list.First()
	case normal && key.Matches(msg, s.keys.Bottom):
		s.list.Last()
	case normal && key.Matches(msg, s.keys.Find):
		s.editor.Begin(CmdFind + " ")
	case normal && key.Matches(msg, s.keys.Quit):
		return Terminate
	}
	return Continue
}

func (s *BrowserScreen) find(args []string) bool {
	needle := strings.Join(args, " ")
	if needle == "" {
		s.SetNotice("find needs a search text", true)
		return true
	}

	haystack := make([]string, s.list.Len())
	for i, c := range s.list.Items() {
		haystack[i] = c.ID + " " + c.Subject() + " " + c.AuthorName
	}
	ranks := fuzzy.RankFindNormalizedFold(needle, haystack)
	if len(ranks) == 0 {
		s.SetNotice(fmt.Sprintf("No commit matches %q", needle), true)
		return true
	}

	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	s.list.Select(best.OriginalIndex)
	return true
}

func (s *BrowserScreen) copyID([]string) bool {
	c, ok := s.list.Current()
	if !ok {
		s.SetNotice("No commit selected", true)
		return true
	}
	if err := writeClipboard(c.ID); err != nil {
		log.Warn("failed to copy commit id", "error", err)
		s.SetNotice(fmt.Sprintf("Copy failed: %v", err), true)
		return true
	}
	s.SetNotice(fmt.Sprintf("Copied %s", c.ShortID()), false)
	return true
}

func (s *BrowserScreen) formatDate(when time.Time) string {
	if when.IsZero() {
		return ""
	}
	if s.relativeDates {
		return humanize.RelTime(when, s.now(), "ago", "from now")
	}
	return when.Local().Format("2006-01-02 15:04")
}

// View renders the commit table.
func (s *BrowserScreen) View() string {
	width := s.view.WindowWidth
	height := s.view.ListHeight(browserChrome)

	var body string
	if s.list.Len() == 0 {
		body = emptyView(s.thm, "No history to show.")
	} else {
		start, end := s.list.Window(height)
		rows := make([][]string, 0, end-start)
		for _, c := range s.list.Items()[start:end] {
			rows = append(rows, []string{c.ShortID(), c.Subject(), c.AuthorName, s.formatDate(c.When)})
		}
		selected, ok := s.list.Selected()
		if !ok {
			selected = -1
		}
		body = table{
			thm:      s.thm,
			headers:  []string{"ID", "Message", "Author", "Date"},
			weights:  []int{1, 6, 2, 2},
			rows:     rows,
			start:    start,
			selected: selected,
			width:    width,
		}.View()
	}

	subtitle := s.repo.Path
	if s.repo.RepoURL != "" {
		subtitle += "  " + s.repo.RepoURL
	}
	position := ""
	if i, ok := s.list.Selected(); ok {
		position = fmt.Sprintf("%d/%d  ", i+1, s.list.Len())
	}

	footer := helpLine(s.keys.VimDown, s.keys.VimUp, s.keys.Top, s.keys.Bottom, s.keys.Find, s.keys.Edit, s.keys.Quit)
	if s.editor.Mode() == ModeEditing {
		footer = helpLine(s.keys.Accept, s.keys.Cancel, s.keys.ForceQuit)
	}

	sections := []string{
		titleView(s.thm, s.repo.Name, subtitle, width),
		body,
	}
	if n := noticeView(s.thm, s.notice, s.noticeErr, width); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, s.editor.View(width), footerView(s.thm, position+footer, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
