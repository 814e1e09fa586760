// Package config holds the tool's TOML configuration and its on-disk
// locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

type OutputConfig struct {
	// Path is the default output file when -o/--output is not given.
	Path string `toml:"path" json:"path"`
}

type DisplayConfig struct {
	Spinner bool `toml:"spinner" json:"spinner"`
	Color   bool `toml:"color" json:"color"`
}

type Config struct {
	Output  OutputConfig  `toml:"output" json:"output"`
	Display DisplayConfig `toml:"display" json:"display"`
}

func DefaultConfig() Config {
	return Config{
		Output:  OutputConfig{Path: "bips.bib"},
		Display: DisplayConfig{Spinner: true, Color: true},
	}
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Init loads the config from disk, replacing any cached copy. It is called
// once at command startup so a malformed file can surface a warning.
func Init() (Config, error) {
	return Reload()
}

// Get returns the cached config, loading it on first use. The returned
// value is a copy; mutating it does not affect later calls.
func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return *c
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return *globalConfig
	}
	c, _ := Load("")
	globalConfig = &c
	return c
}

// Reload re-reads the config from disk and replaces the cached copy.
func Reload() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load(ConfigFile())
	globalConfig = &c
	return c, err
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Env overrides apply on top either way. An empty path
// means the standard config file.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return applyEnvOverrides(cfg), nil
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return applyEnvOverrides(DefaultConfig()), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return applyEnvOverrides(cfg), nil
}

// Save writes cfg to path, creating parent directories as needed. An empty
// path means the standard config file.
func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg Config) Config {
	if v := os.Getenv("BIPS2BIB_OUTPUT"); v != "" {
		cfg.Output.Path = v
	}
	if os.Getenv("BIPS2BIB_NO_COLOR") != "" {
		cfg.Display.Color = false
	}
	return cfg
}
