// Package utils holds small helpers shared by the CLI and the TUI.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirPerms is used when creating configuration directories.
const DefaultDirPerms = 0o750

// ExpandPath expands a leading ~ and environment variables in path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// IsPathWithin reports whether target lies inside base.
func IsPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}
