// Package commands maps typed command lines to handlers.
package commands

import (
	"sort"
	"strings"
	"unicode"
)

// Quit is the built-in command that ends the current screen.
const Quit = "quit"

// Help is the conventional name of the command listing a table's commands.
const Help = "help"

// Handler receives the tokens following the command name and reports
// whether the session should keep running.
type Handler func(args []string) bool

// Table stores command handlers keyed by their case-sensitive name.
type Table struct {
	handlers map[string]Handler
	help     map[string]string
}

// New creates a table with the built-in quit command registered.
func New() *Table {
	t := &Table{
		handlers: make(map[string]Handler),
		help:     make(map[string]string),
	}
	t.Register(Quit, "Leave this screen", func([]string) bool { return false })
	return t
}

// Register adds or replaces the handler for name.
func (t *Table) Register(name, description string, h Handler) {
	if name == "" || h == nil {
		return
	}
	t.handlers[name] = h
	t.help[name] = description
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	_, ok := t.handlers[name]
	return ok
}

// Dispatch splits line on whitespace and runs the handler named by the first
// token. matched is false when the line is blank or the command is unknown,
// in which case no handler ran.
func (t *Table) Dispatch(line string) (keepRunning, matched bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, false
	}
	h, ok := t.handlers[fields[0]]
	if !ok {
		return false, false
	}
	return h(fields[1:]), true
}

// Names returns the registered command names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.handlers))
	for name := range t.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the help text registered with name.
func (t *Table) Description(name string) string {
	return t.help[name]
}

// Usage lists every command with its description on one line, sorted by name.
func (t *Table) Usage() string {
	names := t.Names()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if d := t.Description(name); d != "" {
			parts = append(parts, name+": "+d)
			continue
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "; ")
}

// Remainder returns the text following the first whitespace-separated token
// of line, with the inner spacing preserved.
func Remainder(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(line[i:])
}
