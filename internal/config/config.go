// Package config persists the CLI configuration: the vault location, the
// tag registry note, and the blog directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okullo/notes/pkg/core"
)

// EnvConfigDir overrides the directory holding config.json. Mainly for
// tests and throwaway environments.
const EnvConfigDir = "NOTES_CONFIG_DIR"

const fileName = "config.json"

// Config is the persisted CLI configuration.
type Config struct {
	Vault    string `json:"vault,omitempty"`
	TagsNote string `json:"tags_note,omitempty"`
	Blog     string `json:"blog,omitempty"`
}

// Dir returns the directory holding the config file.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "notes"), nil
}

// File returns the path of the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the persisted configuration. A missing file is not an error;
// it yields the defaults.
func Load() (Config, error) {
	cfg := Config{Vault: ".", TagsNote: core.DefaultTagsNote}

	path, err := File()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Vault == "" {
		cfg.Vault = "."
	}
	if cfg.TagsNote == "" {
		cfg.TagsNote = core.DefaultTagsNote
	}
	return cfg, nil
}

// Save writes the configuration, creating the config directory if needed.
func (c Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, fileName), data, 0644)
}
