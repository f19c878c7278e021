// Package logging builds the structured logger shared by the server and CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File, when set, receives a rotated copy of every line.
	File string
	// JSON switches the formatter from logfmt-style text to JSON.
	JSON bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger writing to cfg.Output and, optionally, a rotating file.
func New(cfg Config) (*log.Logger, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	var writer io.Writer = os.Stderr
	if cfg.Output != nil {
		writer = cfg.Output
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		writer = io.MultiWriter(writer, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	opts := log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "wellness",
	}
	if cfg.JSON {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(writer, opts), nil
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
