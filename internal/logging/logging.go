// Package logging sets up the application logger. CLI commands log to
// stderr; the interactive session redirects to a file so the alternate
// screen stays clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w.
func New(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)

	return logger
}

// NewCLI returns the logger used by non-interactive commands.
func NewCLI() *logrus.Logger {
	return New(os.Stderr)
}

// OpenFile returns a logger appending to the given file, creating the
// parent directory if needed. The returned closer must be closed when
// the session ends.
func OpenFile(name string) (*logrus.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(name), 0o755)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to make log directory for %v: %w", name, err)
	}

	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %v: %w", name, err)
	}

	return New(f), f, nil
}
