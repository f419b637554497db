// Package config loads pearlcfg settings. It uses Viper to merge a YAML
// file, PEARLCFG_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pearlcfg/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override.
	EnvPrefix = "PEARLCFG"
	// DirName is the per-user config directory below $HOME.
	DirName = ".pearlcfg"
	// FileName is the config file name inside DirName.
	FileName = "config.yaml"
)

var validate = validator.New()

// Load reads the configuration from path, or from the default location when
// path is empty. A missing default file is not an error; a missing explicit
// path is. Environment variables take precedence over file values.
func Load(path string) (*model.Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg model.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	normalize(&cfg)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns $HOME/.pearlcfg/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(home, DirName, FileName), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "json")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("output", "PEARLCFG_OUTPUT")
	_ = v.BindEnv("log_level", "PEARLCFG_LOG_LEVEL")
	_ = v.BindEnv("log_format", "PEARLCFG_LOG_FORMAT")
}

func readConfigFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil
		}
		path = p
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			if explicit {
				return fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil
		}
		return fmt.Errorf("error loading config file: %w", err)
	}
	return nil
}

func normalize(cfg *model.Config) {
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	for i := range cfg.Devices {
		d := &cfg.Devices[i]
		d.Address = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(d.Address, "http://"), "https://"), "/")
		if d.Scheme == "" {
			d.Scheme = "http"
		}
		if d.Channels == 0 {
			d.Channels = 1
		}
	}
}
