package screen

// Manager holds the single live screen. Screens never overlap: setting a new
// one replaces the previous.
type Manager struct {
	current Screen
}

// NewManager creates a new screen manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the currently active screen, or nil if none.
func (m *Manager) Current() Screen {
	return m.current
}

// IsActive returns true if there is a screen currently displayed.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the current screen, or TypeNone if no screen is active.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Set replaces the current screen.
func (m *Manager) Set(s Screen) {
	m.current = s
}

// Clear removes the current screen.
func (m *Manager) Clear() {
	m.current = nil
}
