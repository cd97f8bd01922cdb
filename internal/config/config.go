// Package config loads the player configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName    = "comrad"
	fileName   = "config.toml"
	envDataDir = "COMRAD_DATA_DIR"
)

type Config struct {
	// DataDir holds the playlist and settings files and the resume database.
	DataDir string `koanf:"data_dir"`

	TickMS              int    `koanf:"tick_ms" default:"100" validate:"gte=10,lte=1000"`
	SkipBackThresholdMS int    `koanf:"skip_back_threshold_ms" default:"3000" validate:"gte=0,lte=60000"`
	ShuffleSeed         uint64 `koanf:"shuffle_seed"` // 0 seeds from the clock

	Icons string `koanf:"icons" default:"none" validate:"oneof=nerd unicode none"`

	Notifications *bool `koanf:"notifications" default:"true"`
	MPRIS         *bool `koanf:"mpris" default:"true"`

	Log LogConfig `koanf:"log"`
}

// LogConfig selects where and how much is logged.
type LogConfig struct {
	Level string `koanf:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File  string `koanf:"file"`
}

// Load reads the user config file, then ./config.toml, then explicit when
// it is not empty; later files override earlier ones. Missing implicit
// files are skipped, a missing explicit one is an error.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load %s", path)
			}
		}
	}
	if explicit != "" {
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s", explicit)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.finish()
	return cfg
}

func (c *Config) finish() error {
	if err := defaults.Set(c); err != nil {
		return errors.Wrap(err, "set defaults")
	}

	if v := os.Getenv(envDataDir); v != "" {
		c.DataDir = v
	}
	if c.DataDir == "" {
		c.DataDir = filepath.Join(xdg.DataHome, appName)
	}
	c.DataDir = expandPath(c.DataDir)
	c.Log.File = expandPath(c.Log.File)

	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Tick returns the render tick interval.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// SkipBackThreshold returns how far into a track skipping backward still
// moves to the previous one.
func (c *Config) SkipBackThreshold() time.Duration {
	return time.Duration(c.SkipBackThresholdMS) * time.Millisecond
}

// NotificationsEnabled reports whether track changes raise a desktop
// notification.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// MPRISEnabled reports whether the MPRIS service is exported.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, fileName),
		fileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
