// Package log writes structured debug output to an optional log file.
//
// Records are buffered until SetFile is called, so messages emitted while the
// configuration is still loading are not lost. An empty path discards them.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// sink is the io.Writer behind the package logger.
type sink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	globalSink = &sink{}
	logger     = slog.New(slog.NewTextHandler(globalSink, &slog.HandlerOptions{Level: slog.LevelDebug}))
)

// Write implements io.Writer.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}
	if s.file != nil {
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}

	// p may be reused by the handler.
	s.buffer = append(s.buffer, p...)
	return len(p), nil
}

// SetFile routes log output to path, flushing anything buffered so far.
// An empty path discards buffered and future records.
func SetFile(path string) error {
	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()

	if globalSink.file != nil {
		_ = globalSink.file.Close()
		globalSink.file = nil
	}

	if path == "" {
		globalSink.discard = true
		globalSink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		globalSink.discard = true
		globalSink.buffer = nil
		return err
	}

	globalSink.file = f
	globalSink.discard = false
	if len(globalSink.buffer) > 0 {
		_, _ = f.Write(globalSink.buffer)
		_ = f.Sync()
		globalSink.buffer = nil
	}
	return nil
}

// Close closes the log file if one is open.
func Close() error {
	globalSink.mu.Lock()
	defer globalSink.mu.Unlock()

	if globalSink.file == nil {
		return nil
	}
	err := globalSink.file.Close()
	globalSink.file = nil
	return err
}

// Debug logs at debug level with alternating key/value attributes.
func Debug(msg string, args ...any) {
	logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	logger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	logger.Log(context.Background(), slog.LevelWarn, msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	logger.Log(context.Background(), slog.LevelError, msg, args...)
}
