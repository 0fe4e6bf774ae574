package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Config represents the setup-gh configuration
type Config struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Defaults holds values used when the corresponding flag is not given
type Defaults struct {
	Branch        string `yaml:"branch,omitempty"`        // branch the current branch is renamed to
	MasterBranch  string `yaml:"master_branch,omitempty"` // branch pushed when --master keeps the original name
	Remote        string `yaml:"remote,omitempty"`
	Pathspec      string `yaml:"pathspec,omitempty"`
	CommitMessage string `yaml:"commit_message,omitempty"`
}

const (
	ConfigDirName        = "setup-gh"
	ConfigFileName       = "config.yml"
	CurrentVersion       = "1.0"
	DefaultBranch        = "main"
	DefaultMasterBranch  = "master"
	DefaultRemote        = "origin"
	DefaultPathspec      = "."
	DefaultCommitMessage = "init"
)

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Defaults: Defaults{
			Branch:        DefaultBranch,
			MasterBranch:  DefaultMasterBranch,
			Remote:        DefaultRemote,
			Pathspec:      DefaultPathspec,
			CommitMessage: DefaultCommitMessage,
		},
	}
}

// DefaultPath returns the per-user configuration file location,
// e.g. ~/.config/setup-gh/config.yml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// LoadConfig loads configuration from configPath.
// A missing file is not an error; the built-in defaults are returned instead.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate fills unset values with defaults and checks the rest
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	d := &c.Defaults
	if d.Branch == "" {
		d.Branch = DefaultBranch
	}
	if d.MasterBranch == "" {
		d.MasterBranch = DefaultMasterBranch
	}
	if d.Remote == "" {
		d.Remote = DefaultRemote
	}
	if d.Pathspec == "" {
		d.Pathspec = DefaultPathspec
	}
	if d.CommitMessage == "" {
		d.CommitMessage = DefaultCommitMessage
	}

	for field, value := range map[string]string{
		"branch":        d.Branch,
		"master_branch": d.MasterBranch,
		"remote":        d.Remote,
	} {
		if err := validateRefName(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	return nil
}

// validateRefName rejects names git would refuse outright or that would be
// parsed as an option.
func validateRefName(name string) error {
	if strings.TrimSpace(name) != name || strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("name %q must not contain whitespace", name)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("name %q must not start with '-'", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("name %q must not contain '..'", name)
	}
	return nil
}
