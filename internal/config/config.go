package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Enumerator EnumeratorSettings `toml:"enumerator"`
	UI         UISettings         `toml:"ui"`
}

// EnumeratorSettings controls how directory listings are produced
type EnumeratorSettings struct {
	Command    string   `toml:"command"`     // external enumerator binary
	Args       []string `toml:"args"`        // extra arguments before the root
	ShowHidden bool     `toml:"show_hidden"` // honored by the walker fallback
	MaxDepth   int      `toml:"max_depth"`   // 0 means unlimited
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowScores bool `toml:"show_scores"` // render match scores next to rows
	Preview    bool `toml:"preview"`     // open files in the pager on confirm
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Enumerator: EnumeratorSettings{
			Command: "fd",
			Args:    []string{"--color=never"},
		},
		UI: UISettings{
			Preview: true,
		},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading from the standard
// user config location.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "burrow", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when no file
// exists yet.
func (cs *configService) Load() (*Config, error) {
	data, err := os.ReadFile(cs.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Enumerator.Command == "" {
		cfg.Enumerator.Command = "fd"
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(cs.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
