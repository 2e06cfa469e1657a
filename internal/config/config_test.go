package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExplicitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "feona.yml")
	require.NoError(t, os.WriteFile(file, []byte("storageRoot: /tmp/ledger\n"), 0o644))

	conf, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ledger", conf.StorageRoot)
	assert.Equal(t, Default().LogFile, conf.LogFile, "unset fields fall back to defaults")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "feona.yml")
	require.NoError(t, os.WriteFile(file, []byte("storageRoot: [\n"), 0o644))

	_, err := Load(file)
	assert.Error(t, err)
}
