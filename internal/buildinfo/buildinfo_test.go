package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	t.Cleanup(func() { Set("dev", unsetCommit, "unknown", unsetBuiltBy) })
	Set("1.2.3", "abc123", "2025-01-01", "ci")

	assert.Equal(t, Info{Version: "1.2.3", Commit: "abc123", Date: "2025-01-01", BuiltBy: "ci"}, Get())
}

func TestGetFillsBuilder(t *testing.T) {
	Set("dev", unsetCommit, "unknown", unsetBuiltBy)

	// Test binaries carry build info, so the Go version is always known.
	assert.NotEqual(t, unsetBuiltBy, Get().BuiltBy)
	assert.Equal(t, "dev", Get().Version)
}

func TestFormat(t *testing.T) {
	info := Info{Version: "v1", Commit: "deadbeef", Date: "today", BuiltBy: "me"}
	assert.Equal(t, "volnita version v1\ncommit: deadbeef\nbuilt at: today\nbuilt by: me\n", info.Format("volnita"))
}
