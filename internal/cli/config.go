package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pathtrace/pathtrace/pkg/errors"
)

// Config holds user preferences loaded from the TOML config file. Flags
// override config values; config values override the built-in defaults.
type Config struct {
	// Algorithm is the default search algorithm (bfs, dfs, or astar).
	Algorithm string `toml:"algorithm"`

	Animate AnimateConfig `toml:"animate"`
	Render  RenderConfig  `toml:"render"`
}

// AnimateConfig configures the step-through animation.
type AnimateConfig struct {
	// IntervalMS is the autoplay delay between steps in milliseconds.
	IntervalMS int `toml:"interval_ms"`
}

// RenderConfig configures graph export.
type RenderConfig struct {
	// Format is the default export format (dot, svg, or png).
	Format string `toml:"format"`
}

// defaultConfig returns the built-in defaults, used when no config file
// exists or a key is absent.
func defaultConfig() Config {
	return Config{
		Algorithm: "bfs",
		Animate:   AnimateConfig{IntervalMS: 200},
		Render:    RenderConfig{Format: "svg"},
	}
}

// configPath returns the config file location using the XDG standard
// (~/.config/pathtrace/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path, layering it over the defaults.
// A missing file is not an error; a malformed one is reported as
// INVALID_CONFIG so the caller can warn and continue with defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
