package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Widget  WidgetSettings `toml:"widget"`
	Demo    DemoSettings   `toml:"demo"`
}

// WidgetSettings holds the per-instance typeahead tunables
type WidgetSettings struct {
	MinLength  int `toml:"min_length"`  // below this query length the list is cleared, no search
	DebounceMs int `toml:"debounce_ms"` // input quiescence before a search dispatches
	ListHeight int `toml:"list_height"` // visible rows of the suggestion list
}

// DemoSettings holds settings for the demo program
type DemoSettings struct {
	SearchURL string `toml:"search_url"` // remote suggestion endpoint, empty = local trie
	LogFile   string `toml:"log_file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "typeahead")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Zeroed tunables fall back to defaults so a partial file stays usable
	def := DefaultConfig()
	if cfg.Widget.MinLength <= 0 {
		cfg.Widget.MinLength = def.Widget.MinLength
	}
	if cfg.Widget.DebounceMs <= 0 {
		cfg.Widget.DebounceMs = def.Widget.DebounceMs
	}
	if cfg.Widget.ListHeight <= 0 {
		cfg.Widget.ListHeight = def.Widget.ListHeight
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Widget: WidgetSettings{
			MinLength:  1,
			DebounceMs: 200,
			ListHeight: 8,
		},
		Demo: DemoSettings{
			LogFile: "typeahead.log",
		},
	}
}
