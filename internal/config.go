package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-level settings read from ~/.worktimer.yaml. A missing
// file yields defaults; flags override whatever the file says.
type Config struct {
	DatabasePath string `yaml:"database"`
	ExportFormat string `yaml:"export_format"`
	ExportDir    string `yaml:"export_dir"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".worktimer.yaml"), nil
}

// DefaultDatabasePath returns the standard database location.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".worktimer", "worktimer.db"), nil
}

// LoadConfig reads the config file at path, filling defaults for anything
// unset. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		ExportFormat: "csv",
		ExportDir:    "./exports",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ExportFormat == "" {
		cfg.ExportFormat = "csv"
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "./exports"
	}
	return cfg, nil
}
