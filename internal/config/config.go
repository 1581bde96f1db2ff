// Package config loads segkit.yaml.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file
// is not an error.
const DefaultPath = "segkit.yaml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Bundle    BundleConfig    `yaml:"bundle"`
	SelfCheck SelfCheckConfig `yaml:"selfcheck"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type BundleConfig struct {
	Hosts  []string `yaml:"hosts" validate:"min=1,dive,required,hostname"`
	Output string   `yaml:"output"`
}

type SelfCheckConfig struct {
	Seed   int64 `yaml:"seed"`
	Rounds int   `yaml:"rounds" validate:"gte=1"`
	Size   int   `yaml:"size" validate:"gte=1"`
}

func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Bundle: BundleConfig{
			Hosts: []string{"github.com", "golang.org"},
		},
		SelfCheck: SelfCheckConfig{Seed: 1, Rounds: 200, Size: 32},
	}
}

// Load reads path over the defaults. An empty path falls back to DefaultPath
// when that file exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(b, cfg)
}

// Parse decodes b on top of base and validates the result.
func Parse(b []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}
