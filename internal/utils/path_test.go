package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("VOLNITA_TEST_DIR", "/srv/code")

	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: home},
		{in: "~/src/repo", want: filepath.Join(home, "src/repo")},
		{in: "  /abs/path  ", want: "/abs/path"},
		{in: "$VOLNITA_TEST_DIR/repo", want: "/srv/code/repo"},
		{in: "~user/repo", want: "~user/repo"},
		{in: "relative", want: "relative"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ExpandPath(%q)", tt.in)
	}
}

func TestIsPathWithin(t *testing.T) {
	assert.True(t, IsPathWithin("/a/b", "/a/b"))
	assert.True(t, IsPathWithin("/a/b", "/a/b/c.yaml"))
	assert.False(t, IsPathWithin("/a/b", "/a/bc"))
	assert.False(t, IsPathWithin("/a/b", "/a"))
	assert.False(t, IsPathWithin("/a/b", "/a/b/../../etc"))
}
