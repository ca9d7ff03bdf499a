// Package screen provides the full-terminal screens of a volnita session.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LoopSignal tells the driver whether a screen wants to keep handling input.
type LoopSignal int

// Loop signals.
const (
	Continue LoopSignal = iota
	Terminate
)

// String returns a human-readable name for the signal.
func (s LoopSignal) String() string {
	if s == Terminate {
		return "terminate"
	}
	return "continue"
}

// Screen is one interactive mode with its own input handling and view.
type Screen interface {
	// Update handles one key event. Terminate is final for the screen; the
	// driver decides what comes next.
	Update(msg tea.KeyMsg) LoopSignal

	// View renders the screen's content.
	View() string

	// AdvanceSelection moves the list selection forward, wrapping around.
	AdvanceSelection()

	// RetreatSelection moves the list selection back, wrapping around.
	RetreatSelection()

	// SetSize informs the screen of the terminal dimensions.
	SetSize(width, height int)

	// Type returns the screen's type identifier.
	Type() Type
}

// Type identifies the kind of screen being displayed.
type Type int

// Screen type constants.
const (
	TypeNone Type = iota
	TypeSelector
	TypeBrowser
)

// String returns a human-readable name for the screen type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeSelector:
		return "selector"
	case TypeBrowser:
		return "browser"
	default:
		return "unknown"
	}
}
