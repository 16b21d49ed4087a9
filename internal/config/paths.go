package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "vardovia"

func ConfigDir() string {
	if v := os.Getenv("VARDOVIA_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func CacheDir() string {
	if v := os.Getenv("VARDOVIA_CACHE_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.CacheHome, appName)
}

func ConfigFile() string   { return filepath.Join(ConfigDir(), "config.toml") }
func GlossaryFile() string { return filepath.Join(ConfigDir(), "glossary.yaml") }
