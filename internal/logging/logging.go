package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

func init() {
	// Discard logs until Init is called; stderr would corrupt the TUI
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Init points the default slog logger at logPath.
// If logPath is empty, logs are discarded.
// The log file is created with mode 0600 (user-only).
// The returned closer releases the file.
func Init(logPath string, debug bool) (io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if logPath == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
		return io.NopCloser(nil), nil
	}

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(file, opts)))
	return file, nil
}
