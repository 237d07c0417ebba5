// Package config loads the simulate CLI's configuration. Grounded on
// the teacher's cmd/server/main.go config.Load(path) call — the
// teacher's own internal/config package wasn't part of this retrieval,
// so this rebuilds the same "load a YAML file into a struct, fall back
// to defaults" shape using viper, the config library already in the
// teacher's own go.mod.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/PropterMalone/3cblue/internal/cblog"
	"github.com/spf13/viper"
)

// Config is everything the simulate CLI needs beyond the deck files
// given on the command line.
type Config struct {
	MaxDepth int
	Logging  cblog.Config
}

func defaults() Config {
	return Config{
		MaxDepth: 200,
		Logging:  cblog.Config{Level: "info", Format: "console"},
	}
}

// Load reads a YAML config file at path into a Config, filling in
// defaults for anything unset. path may not exist — a missing config
// file is not an error, since every field has a sane default.
func Load(path string) (Config, error) {
	cfg := defaults()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("max_depth", cfg.MaxDepth)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg.MaxDepth = v.GetInt("max_depth")
	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.Format = v.GetString("logging.format")
	return cfg, nil
}
