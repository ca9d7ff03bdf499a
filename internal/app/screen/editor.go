package screen

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/volnita/volnita/internal/theme"
)

// Mode is the input mode of a LineEditor.
type Mode int

// Editor modes.
const (
	ModeNormal Mode = iota
	ModeEditing
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeEditing {
		return "EDIT"
	}
	return "NORMAL"
}

// EditResult reports what the editor did with a key.
type EditResult int

// Edit results.
const (
	// EditIgnored means the key is left to the screen.
	EditIgnored EditResult = iota
	// EditConsumed means the editor handled the key.
	EditConsumed
	// EditSubmitted means a line was submitted and recorded in the history.
	EditSubmitted
)

// LineEditor is a single-line text buffer with a Normal/Editing mode and a
// history of submitted lines.
type LineEditor struct {
	Title string

	input   textinput.Model
	mode    Mode
	history []string
	keys    KeyMap
	thm     *theme.Theme
}

// NewLineEditor creates an editor starting in mode.
func NewLineEditor(title, placeholder string, mode Mode, thm *theme.Theme) *LineEditor {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(thm.Accent)
	ti.TextStyle = lipgloss.NewStyle().Foreground(thm.TextFg)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(thm.MutedFg)

	e := &LineEditor{
		Title: title,
		input: ti,
		keys:  DefaultKeyMap(),
		thm:   thm,
	}
	e.SetMode(mode)
	return e
}

// Mode returns the current input mode.
func (e *LineEditor) Mode() Mode {
	return e.mode
}

// SetMode switches the input mode. Only Editing mode accepts text.
func (e *LineEditor) SetMode(m Mode) {
	e.mode = m
	if m == ModeEditing {
		e.input.Focus()
		return
	}
	e.input.Blur()
}

// Begin enters Editing mode with the buffer set to prefill and the cursor
// at its end.
func (e *LineEditor) Begin(prefill string) {
	e.input.SetValue(prefill)
	e.input.CursorEnd()
	e.SetMode(ModeEditing)
}

// Value returns the buffer contents.
func (e *LineEditor) Value() string {
	return e.input.Value()
}

// Position returns the cursor position in runes. It never exceeds the
// buffer length.
func (e *LineEditor) Position() int {
	return e.input.Position()
}

// Submit records the buffer in the history, clears it and resets the cursor.
// Empty buffers are recorded too.
func (e *LineEditor) Submit() string {
	line := e.input.Value()
	e.history = append(e.history, line)
	e.input.Reset()
	return line
}

// History returns the submitted lines, oldest first.
func (e *LineEditor) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// Last returns the most recently submitted line. It reports false until the
// first submit.
func (e *LineEditor) Last() (string, bool) {
	if len(e.history) == 0 {
		return "", false
	}
	return e.history[len(e.history)-1], true
}

// HandleKey applies msg to the editor. In Normal mode only the enter-edit
// key is consumed. In Editing mode escape returns to Normal, the accept key
// submits and returns to Normal, vertical navigation is left to the screen
// and everything else edits the buffer.
func (e *LineEditor) HandleKey(msg tea.KeyMsg) (EditResult, string) {
	if e.mode == ModeNormal {
		if key.Matches(msg, e.keys.Edit) {
			e.SetMode(ModeEditing)
			return EditConsumed, ""
		}
		return EditIgnored, ""
	}

	switch {
	case key.Matches(msg, e.keys.Cancel):
		e.SetMode(ModeNormal)
		return EditConsumed, ""
	case key.Matches(msg, e.keys.Accept):
		line := e.Submit()
		e.SetMode(ModeNormal)
		return EditSubmitted, line
	case key.Matches(msg, e.keys.Up), key.Matches(msg, e.keys.Down):
		return EditIgnored, ""
	}

	e.input, _ = e.input.Update(msg)
	return EditConsumed, ""
}

// View renders the editor as a bordered single-line box.
func (e *LineEditor) View(width int) string {
	border := e.thm.Border
	if e.mode == ModeEditing {
		border = e.thm.Accent
	}
	if width < 10 {
		width = 10
	}
	e.input.Width = width - 6

	titleStyle := lipgloss.NewStyle().Foreground(e.thm.Accent).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(e.thm.MutedFg)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2)

	header := titleStyle.Render(e.Title) + " " + modeStyle.Render("["+e.mode.String()+"]")
	return lipgloss.JoinVertical(lipgloss.Left, header, boxStyle.Render(e.input.View()))
}
