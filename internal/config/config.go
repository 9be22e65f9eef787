package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"issuepick/internal/eventbus"
)

// EnvPrefix is the prefix for environment overrides, e.g. ISSUEPICK_UI_SHOW_COUNTS
const EnvPrefix = "ISSUEPICK"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version" mapstructure:"version"`
	IssuesFile string     `toml:"issues_file" mapstructure:"issues_file"` // empty uses the built-in sample
	Watch      bool       `toml:"watch" mapstructure:"watch"`
	LogFile    string     `toml:"log_file" mapstructure:"log_file"`
	UISettings UISettings `toml:"ui" mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title         string `toml:"title" mapstructure:"title"`
	ShowCounts    bool   `toml:"show_counts" mapstructure:"show_counts"`
	MessageWidth  int    `toml:"message_width" mapstructure:"message_width"`
	MarkdownStyle string `toml:"markdown_style" mapstructure:"markdown_style"` // glamour style; empty detects the terminal
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

// DefaultPath returns the default config file location
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
	return filepath.Join(configDir, "issuepick", "config.toml")
}

// NewConfigService creates a config service for the given file; empty uses DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields the defaults with environment overrides applied.
func (cs *configService) Load() (*Config, error) {
	cfg, err := read(cs.filePath, false)
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return read(path, true)
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

// read layers defaults, the TOML file and ISSUEPICK_* environment variables
func read(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound):
			if mustExist {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
		default:
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("issues_file", d.IssuesFile)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("ui.title", d.UISettings.Title)
	v.SetDefault("ui.show_counts", d.UISettings.ShowCounts)
	v.SetDefault("ui.message_width", d.UISettings.MessageWidth)
	v.SetDefault("ui.markdown_style", d.UISettings.MarkdownStyle)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "issuepick.log",
		UISettings: UISettings{
			Title:        "Issues",
			ShowCounts:   false,
			MessageWidth: 48,
		},
	}
}
