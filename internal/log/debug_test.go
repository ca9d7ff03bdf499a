package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSink(t *testing.T) {
	t.Helper()

	globalSink.mu.Lock()
	prevFile := globalSink.file
	prevBuffer := append([]byte(nil), globalSink.buffer...)
	prevDiscard := globalSink.discard
	globalSink.file = nil
	globalSink.buffer = nil
	globalSink.discard = false
	globalSink.mu.Unlock()

	t.Cleanup(func() {
		globalSink.mu.Lock()
		if globalSink.file != nil {
			_ = globalSink.file.Close()
		}
		globalSink.file = prevFile
		globalSink.buffer = prevBuffer
		globalSink.discard = prevDiscard
		globalSink.mu.Unlock()
	})
}

func TestBufferedRecordsFlushToFile(t *testing.T) {
	resetSink(t)

	Debug("before file", "key", "early")

	path := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(path))
	Info("after file", "repo", "/tmp/repo")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "before file")
	assert.Contains(t, content, "key=early")
	assert.Contains(t, content, "after file")
	assert.Contains(t, content, "repo=/tmp/repo")
	assert.Less(t, strings.Index(content, "before file"), strings.Index(content, "after file"))
}

func TestEmptyPathDiscards(t *testing.T) {
	resetSink(t)

	Warn("dropped")
	require.NoError(t, SetFile(""))

	globalSink.mu.Lock()
	bufferLen := len(globalSink.buffer)
	discard := globalSink.discard
	globalSink.mu.Unlock()

	assert.True(t, discard)
	assert.Zero(t, bufferLen)

	Error("also dropped")
	globalSink.mu.Lock()
	bufferLen = len(globalSink.buffer)
	globalSink.mu.Unlock()
	assert.Zero(t, bufferLen)
}

func TestSetFileFailureDiscardsLogs(t *testing.T) {
	resetSink(t)

	unwritableDir := t.TempDir()
	require.NoError(t, os.Chmod(unwritableDir, 0o500)) //nolint:gosec
	t.Cleanup(func() {
		_ = os.Chmod(unwritableDir, 0o700) //nolint:gosec
	})
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	logPath := filepath.Join(unwritableDir, "debug.log")
	require.Error(t, SetFile(logPath))

	Debug("should be discarded")

	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()
	assert.True(t, globalSink.discard)
	assert.Empty(t, globalSink.buffer)
}

func TestCloseWithoutFile(t *testing.T) {
	resetSink(t)
	assert.NoError(t, Close())
}
