// Package logger provides leveled logging for csvnorm.
// Warnings and errors are always printed to stderr. When verbose mode is
// enabled via the --verbose flag, debug and info messages are printed too,
// to help users follow a run file by file.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newCharmLogger(os.Stderr, false)
)

var sectionStyle = lipgloss.NewStyle().Bold(true)

// Logger is a logger carrying fixed key/value pairs, such as a run ID.
type Logger struct {
	charm *charmlog.Logger
}

func newCharmLogger(w io.Writer, v bool) *charmlog.Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
		Level:           levelFor(v),
	})
	l.SetFormatter(charmlog.TextFormatter)
	l.SetStyles(styles())
	return l
}

func levelFor(v bool) charmlog.Level {
	if v {
		return charmlog.DebugLevel
	}
	return charmlog.WarnLevel
}

func styles() *charmlog.Styles {
	s := charmlog.DefaultStyles()
	s.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	s.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	s.Keys["run"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Keys["file"] = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	return s
}

func current() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base.SetLevel(levelFor(v))
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newCharmLogger(w, verbose)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n%s\n", sectionStyle.Render("=== "+name+" ==="))
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// With returns a logger that attaches keyvals to every message.
// The returned logger keeps the verbosity in effect when it was created.
func With(keyvals ...any) *Logger {
	return &Logger{charm: current().With(keyvals...)}
}

// Debug prints a message if verbose mode was enabled.
func (l *Logger) Debug(format string, args ...any) { l.charm.Debugf(format, args...) }

// Info prints an informational message if verbose mode was enabled.
func (l *Logger) Info(format string, args ...any) { l.charm.Infof(format, args...) }

// Warn prints a warning message.
func (l *Logger) Warn(format string, args ...any) { l.charm.Warnf(format, args...) }

// Error prints an error message.
func (l *Logger) Error(format string, args ...any) { l.charm.Errorf(format, args...) }
