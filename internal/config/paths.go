package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "bips2bib"

// ConfigDir is where config.toml and aliases.yaml live. The
// BIPS2BIB_CONFIG_DIR env var overrides the XDG default, which test code
// relies on.
func ConfigDir() string {
	if v := os.Getenv("BIPS2BIB_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func ConfigFile() string  { return filepath.Join(ConfigDir(), "config.toml") }
func AliasesFile() string { return filepath.Join(ConfigDir(), "aliases.yaml") }
