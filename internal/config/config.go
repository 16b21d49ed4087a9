package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

const DefaultServerURL = "http://localhost:5000"

type ServerConfig struct {
	URL     string  `toml:"url" json:"url"`
	Timeout float64 `toml:"timeout" json:"timeout"`
}

type DisplayConfig struct {
	ShowStatus bool `toml:"show_status" json:"show_status"`
	ShowImages bool `toml:"show_images" json:"show_images"`
	Colors     bool `toml:"colors" json:"colors"`
	// WrapWidth caps narration width; 0 means the terminal width.
	WrapWidth int `toml:"wrap_width" json:"wrap_width"`
}

type TranslateConfig struct {
	// Glossary is a path to a YAML phrase table. Empty disables translation.
	Glossary string `toml:"glossary" json:"glossary"`
}

type Config struct {
	Server    ServerConfig    `toml:"server" json:"server"`
	Display   DisplayConfig   `toml:"display" json:"display"`
	Translate TranslateConfig `toml:"translate" json:"translate"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: 60.0,
		},
		Display: DisplayConfig{
			ShowStatus: true,
			ShowImages: true,
			Colors:     true,
			WrapWidth:  0,
		},
	}
}

// ServerURL returns the configured server URL without a trailing slash.
func (c Config) ServerURL() string {
	u := strings.TrimRight(strings.TrimSpace(c.Server.URL), "/")
	if u == "" {
		return DefaultServerURL
	}
	return u
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Init loads the config file into the process-wide copy. A malformed file
// still installs defaults and reports the parse error.
func Init() (Config, error) {
	return Reload()
}

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

func Reload() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load("")
	globalConfig = &c
	return c, err
}

func set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	globalConfig = &cfg
}

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
	if v := strings.TrimSpace(os.Getenv("VARDOVIA_SERVER_URL")); v != "" {
		cfg.Server.URL = v
	}
	if os.Getenv("VARDOVIA_NO_COLOR") != "" {
		cfg.Display.Colors = false
	}
	return cfg
}
