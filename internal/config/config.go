// Package config loads the feona configuration file and supplies
// defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// appDir is the directory name used under the XDG base directories.
const appDir = "feona"

// DefaultConfigFile is the config file name looked up under the XDG
// config directory when no -config flag is given.
const DefaultConfigFile = "feona.yml"

// Config is the runtime configuration. The storage root is handed to
// the ledger store explicitly; nothing below cmd/ reads the process
// environment.
type Config struct {
	// StorageRoot is the directory holding the per-month ledger
	// files, laid out as <StorageRoot>/YYYY/MM.csv.
	StorageRoot string `yaml:"storageRoot"`

	// LogFile receives log output while the interactive session owns
	// the terminal.
	LogFile string `yaml:"logFile"`
}

// Default returns the built-in configuration: ledger data under the
// XDG data directory and logs under the XDG state directory.
func Default() Config {
	return Config{
		StorageRoot: filepath.Join(xdg.DataHome, appDir, "ledger"),
		LogFile:     filepath.Join(xdg.StateHome, appDir, "feona.log"),
	}
}

// Load reads the configuration from file, or from the XDG config
// directory when file is empty. A missing file is not an error: the
// defaults apply. Fields left unset in the file are filled in from the
// defaults.
func Load(file string) (Config, error) {
	conf := Config{}

	explicit := file != ""
	if !explicit {
		file = filepath.Join(xdg.ConfigHome, appDir, DefaultConfigFile)
	}

	exists, err := fileExists(file)
	if err != nil {
		return conf, fmt.Errorf("failed to check if file %v exists: %w", file, err)
	}

	if !exists {
		if explicit {
			return conf, fmt.Errorf("config file %v does not exist", file)
		}

		return Default(), nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return conf, fmt.Errorf("failed to load config %v: %w", file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, fmt.Errorf("failed to unmarshal config %v: %w", file, err)
	}

	if err := mergo.Merge(&conf, Default()); err != nil {
		return conf, fmt.Errorf("failed to merge config defaults: %w", err)
	}

	return conf, nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}
