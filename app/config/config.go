package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds runtime wiring options for the backend and the screen.
type Config struct {
	DBPath    string // badger directory of the backend
	BackupDir string // where db backup writes files
	Addr      string // backend listen address
	ServerURL string // backend base URL the screen talks to
	Platform  string // platform override for the screen; empty detects
	LogLevel  string // debug, info, warn, error
	LogFile   string // screen log file; empty discards
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:    "data/badger",
		BackupDir: "data/backups",
		Addr:      ":8080",
		ServerURL: "http://127.0.0.1:8080",
		LogLevel:  "info",
	}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger builds a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// ScreenLogger opens LogFile for the terminal screen, which cannot log to
// its own terminal. The returned closer must be called on exit.
func (c Config) ScreenLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		logger, err := c.NewLogger(io.Discard)
		return logger, nopCloser{}, err
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := c.NewLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
