package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer

	New(&buf).Error("config is broken")

	assert.Contains(t, buf.String(), "config is broken")
}

func TestNewCLIWritesToStderr(t *testing.T) {
	logger := NewCLI()

	require.NotNil(t, logger)
	assert.Equal(t, os.Stderr, logger.Out)
}

func TestOpenFileCreatesParentDirectory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "state", "feona.log")

	logger, closer, err := OpenFile(name)
	require.NoError(t, err)

	logger.Info("session started")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(b), "session started")
}
