package state

// ViewState holds UI-related state shared by the driver and its screens.
type ViewState struct {
	WindowWidth  int
	WindowHeight int
}

// ListHeight returns the number of rows left for a list once chrome lines
// are subtracted. It never drops below one.
func (v ViewState) ListHeight(chrome int) int {
	h := v.WindowHeight - chrome
	if h < 1 {
		return 1
	}
	return h
}
