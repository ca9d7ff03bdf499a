package state

// List is an ordered set of rows with at most one selected index.
// Navigation wraps around in both directions.
type List[T any] struct {
	items    []T
	selected int // -1 = nothing selected
}

// NewList builds a list over items with no selection.
func NewList[T any](items []T) *List[T] {
	return &List[T]{items: items, selected: -1}
}

// Items returns the rows in display order.
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of rows.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the selected index, if any.
func (l *List[T]) Selected() (int, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return 0, false
	}
	return l.selected, true
}

// Current returns the selected row, if any.
func (l *List[T]) Current() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Advance moves the selection to the next row, wrapping to the first.
// The first call on a list without selection selects row 0.
func (l *List[T]) Advance() {
	count := len(l.items)
	if count == 0 {
		return
	}
	if l.selected < 0 {
		l.selected = 0
		return
	}
	l.selected = (l.selected + 1) % count
}

// Retreat moves the selection to the previous row, wrapping to the last.
// The first call on a list without selection selects row 0.
func (l *List[T]) Retreat() {
	count := len(l.items)
	if count == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected == 0:
		l.selected = count - 1
	default:
		l.selected--
	}
}

// Select sets the selection to i. Out of range indexes are ignored.
func (l *List[T]) Select(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.selected = i
	return true
}

// First selects the first row.
func (l *List[T]) First() bool {
	return l.Select(0)
}

// Last selects the last row.
func (l *List[T]) Last() bool {
	return l.Select(len(l.items) - 1)
}

// Window returns the half-open range [start, end) of rows to draw so the
// selection stays visible within height rows.
func (l *List[T]) Window(height int) (int, int) {
	count := len(l.items)
	if height <= 0 || count <= height {
		return 0, count
	}
	cur, ok := l.Selected()
	if !ok {
		return 0, height
	}
	start := cur - height/2
	if start < 0 {
		start = 0
	}
	if start+height > count {
		start = count - height
	}
	return start, start + height
}
