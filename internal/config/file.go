// Package config handles application configuration: UI state kept in Fyne
// preferences and the optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// FileConfig holds settings read from the YAML configuration file.
type FileConfig struct {
	// AllowedPaths are folders images may be loaded from, in addition to
	// the user's Downloads and Desktop folders.
	AllowedPaths []string `yaml:"allowed_paths"`
	// DisableDefaultPaths drops Downloads and Desktop from the allow-list.
	DisableDefaultPaths bool   `yaml:"disable_default_paths"`
	LogLevel            string `yaml:"log_level"`
	LogFile             string `yaml:"log_file"`
	Language            string `yaml:"language"`
}

// DefaultFileConfig returns a FileConfig with sensible defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		AllowedPaths: []string{},
		LogLevel:     "info",
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults(configPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values and expands allowed paths relative to the
// config file's directory.
func (c *FileConfig) applyDefaults(configPath string) {
	if c.LogLevel == "" {
		c.LogLevel = DefaultFileConfig().LogLevel
	}

	baseDir := ""
	if configPath != "" {
		baseDir = filepath.Dir(configPath)
	}
	for i, p := range c.AllowedPaths {
		c.AllowedPaths[i] = expandPath(p, baseDir)
	}
}

// Validate checks that the configuration is valid.
func (c *FileConfig) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = errs.Append("log_level", fmt.Errorf("unknown level %q", c.LogLevel))
	}

	if c.Language != "" {
		if _, ok := languages[c.Language]; !ok {
			errs = errs.Append("language", fmt.Errorf("unsupported language %q", c.Language))
		}
	}

	for i, p := range c.AllowedPaths {
		if strings.TrimSpace(p) == "" {
			errs = errs.Append(fmt.Sprintf("allowed_paths[%d]", i), fmt.Errorf("path cannot be empty"))
		}
	}

	if err := isFileOrNotExist(c.LogFile); err != nil {
		errs = errs.Append("log_file", err)
	}

	return errs.ToError()
}

var languages = map[string]struct{}{
	"system": {},
	"en":     {},
	"ru":     {},
	"pt":     {},
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

// expandPath resolves "~/" against the home directory and relative paths
// against baseDir.
func expandPath(p, baseDir string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if !filepath.IsAbs(p) && baseDir != "" {
		p = filepath.Join(baseDir, p)
	}
	return p
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "caption-editor", "config.yaml")
}

// DefaultLogFile returns the default log file path using XDG_STATE_HOME.
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "caption-editor", "caption-editor.log")
}
