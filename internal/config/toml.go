// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Train TrainConfig `toml:"train"`
	Doc   DocConfig   `toml:"doc"`
}

// TrainConfig maps word-line trainer settings.
type TrainConfig struct {
	Coverage  *float64 `toml:"coverage"`
	FlashMs   *int     `toml:"flash-ms"`
	Row       *int     `toml:"row"`
	Delimiter *string  `toml:"delimiter"`
	ASCII     *bool    `toml:"ascii"`
}

// DocConfig maps whole-document mode settings.
type DocConfig struct {
	Row *int `toml:"row"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
