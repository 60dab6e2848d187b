// Package config loads the optional TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user settings. Command-line flags override everything here.
type Config struct {
	// DrawFrames draws a border row/column around directories.
	DrawFrames bool `toml:"draw_frames"`
	// NativeScan walks the filesystem directly instead of running du.
	NativeScan bool `toml:"native_scan"`
	// DuCommand overrides the du invocation, e.g. ["du", "-a", "-B1"].
	DuCommand []string `toml:"du_command"`
	// BlockSize is the storage unit of the record sizes, in bytes.
	BlockSize int64 `toml:"block_size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DrawFrames: true,
		BlockSize:  1,
	}
}

// Path returns the config file location, empty when no user config
// directory exists.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fsview", "config.toml")
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A malformed file is an error; silently ignoring it
// would make settings appear to vanish.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if cfg.BlockSize < 1 {
		cfg.BlockSize = 1
	}
	return cfg, nil
}
