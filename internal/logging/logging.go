// Package logging builds the *slog.Logger shared by restsnap components.
// Records are handled by charmbracelet/log and written to stderr so they
// never mix with command output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Options configures New.
type Options struct {
	Level   string // debug, info, warn or error
	Format  string // text, json or logfmt
	Verbose bool   // forces debug level with timestamps and callers
	Writer  io.Writer
}

// New returns a logger tagged with a fresh run id.
func New(opts Options) (*slog.Logger, error) {
	name := strings.ToLower(opts.Level)
	if name == "" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if opts.Verbose {
		level = log.DebugLevel
	}

	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.Verbose,
		ReportCaller:    opts.Verbose,
	})

	id, err := RunID()
	if err != nil {
		return nil, err
	}
	return slog.New(handler).With("run", id), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RunID returns a short random identifier for one invocation.
func RunID() (string, error) {
	id, err := gonanoid.Generate(runIDAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return id, nil
}

func parseFormat(s string) (log.Formatter, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("unknown log format %q", s)
	}
}
