package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"spotlight/internal/discovery"
	"spotlight/internal/eventbus"
)

// CurrentVersion is the config schema version written by Save
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version"`
	Roots   []string     `toml:"roots,omitempty"`
	Scan    ScanSettings `toml:"scan"`
	UI      UISettings   `toml:"ui"`
	Keys    KeySettings  `toml:"keys"`
}

// ScanSettings controls discovery
type ScanSettings struct {
	MaxDepth   int      `toml:"max_depth"`
	Ignore     []string `toml:"ignore"`
	ShowHidden bool     `toml:"show_hidden"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ListHeight   int  `toml:"list_height"`
	Width        int  `toml:"width"`
	MaxResults   int  `toml:"max_results"`
	ShowPreview  bool `toml:"show_preview"`
	PreviewBytes int  `toml:"preview_bytes"`
	SmoothScroll bool `toml:"smooth_scroll"`
}

// KeySettings overrides the directional key bindings. Empty lists keep the
// defaults.
type KeySettings struct {
	Down  []string `toml:"down,omitempty"`
	Up    []string `toml:"up,omitempty"`
	First []string `toml:"first,omitempty"`
	Last  []string `toml:"last,omitempty"`
}

// Default UI values, also used to repair invalid ones
const (
	DefaultListHeight   = 12
	DefaultWidth        = 100
	DefaultMaxResults   = 500
	DefaultPreviewBytes = 16 * 1024
)

// ScanOptions converts the scan settings for the discovery service
func (c *Config) ScanOptions() discovery.Options {
	return discovery.Options{
		MaxDepth:   c.Scan.MaxDepth,
		Ignore:     slices.Clone(c.Scan.Ignore),
		ShowHidden: c.Scan.ShowHidden,
	}
}

// Normalize replaces invalid values with defaults
func (c *Config) Normalize() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.UI.ListHeight <= 0 {
		c.UI.ListHeight = DefaultListHeight
	}
	if c.UI.Width <= 0 {
		c.UI.Width = DefaultWidth
	}
	if c.UI.MaxResults <= 0 {
		c.UI.MaxResults = DefaultMaxResults
	}
	if c.UI.PreviewBytes <= 0 {
		c.UI.PreviewBytes = DefaultPreviewBytes
	}
	if c.Scan.MaxDepth < 0 {
		c.Scan.MaxDepth = 0
	}
	if c.Scan.Ignore == nil {
		c.Scan.Ignore = slices.Clone(discovery.DefaultIgnore)
	}
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
	return filepath.Join(configDir, "spotlight", "config.toml")
}

// NewConfigService creates a config service reading and writing path. An
// empty path means DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Roots: cfg.Roots,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. The returned error
// wraps fs.ErrNotExist when the file is missing.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := discovery.DefaultOptions()
	return &Config{
		Version: CurrentVersion,
		Scan: ScanSettings{
			MaxDepth:   opts.MaxDepth,
			Ignore:     opts.Ignore,
			ShowHidden: opts.ShowHidden,
		},
		UI: UISettings{
			ListHeight:   DefaultListHeight,
			Width:        DefaultWidth,
			MaxResults:   DefaultMaxResults,
			ShowPreview:  true,
			PreviewBytes: DefaultPreviewBytes,
			SmoothScroll: true,
		},
	}
}
