package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"activityfinder/internal/domain"
	"activityfinder/internal/eventbus"
)

// CurrentVersion is written into new config files
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Provider ProviderConfig `toml:"provider"`
	Search   SearchConfig   `toml:"search"`
	UI       UISettings     `toml:"ui"`
	Log      LogConfig      `toml:"log"`
	Presets  []PresetConfig `toml:"presets"`
}

// ProviderConfig configures the remote search endpoint
type ProviderConfig struct {
	Endpoint  string   `toml:"endpoint"`
	Timeout   Duration `toml:"timeout"`
	RateLimit float64  `toml:"rate_limit"` // requests per second, 0 = unlimited
	Burst     int      `toml:"burst"`
}

// SearchConfig controls the request lifecycle
type SearchConfig struct {
	DiscardStale      bool     `toml:"discard_stale"`
	QueueWhileLoading bool     `toml:"queue_while_loading"`
	FilterDebounce    Duration `toml:"filter_debounce"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowImages    bool `toml:"show_images"`
	SkeletonCount int  `toml:"skeleton_count"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PresetConfig is one quick-search shortcut
type PresetConfig struct {
	Query    string `toml:"query"`
	Location string `toml:"location"`
	Category string `toml:"category,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path. An empty path selects
// DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "activityfinder", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Values absent from
// the file keep their defaults, and the result is validated.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// Presets in the file replace the defaults rather than merging with them
	cfg.Presets = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Presets == nil {
		cfg.Presets = DefaultPresets()
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders the configuration as TOML
func Marshal(config *Config) ([]byte, error) {
	data, err := toml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Provider: ProviderConfig{
			Endpoint:  DefaultEndpoint,
			Timeout:   Duration(DefaultTimeout),
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
		Search: SearchConfig{
			DiscardStale:      false,
			QueueWhileLoading: true,
		},
		UI: UISettings{
			ShowImages:    true,
			SkeletonCount: DefaultSkeletonCount,
		},
		Log: LogConfig{
			Level: "info",
		},
		Presets: DefaultPresets(),
	}
}

// DefaultPresets returns the built-in quick searches
func DefaultPresets() []PresetConfig {
	return []PresetConfig{
		{Query: "live music", Location: "New York", Category: string(domain.CategoryMusic)},
		{Query: "food festival", Location: "San Francisco", Category: string(domain.CategoryFood)},
		{Query: "tech meetup", Location: "Seattle", Category: string(domain.CategoryTech)},
		{Query: "art gallery", Location: "Los Angeles", Category: string(domain.CategoryArt)},
	}
}
