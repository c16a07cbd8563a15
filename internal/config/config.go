package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "webshare"
	configFile = "config.yaml"
)

type Config struct {
	// StartURL is what the desktop window opens. Empty means the built-in
	// demo page served by the local server.
	StartURL   string `yaml:"start_url"`
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level"`
	Debug      bool   `yaml:"debug"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
}

func Default() Config {
	return Config{
		ListenAddr: "127.0.0.1:0",
		LogLevel:   "info",
		Width:      1040,
		Height:     768,
	}
}

// Load reads the config from the user config directory, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(configDir, appName, configFile))
}

// LoadFile reads path, writing defaults there if it does not exist, and
// applies environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, out, 0600); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEBSHARE_START_URL"); v != "" {
		cfg.StartURL = v
	}
	if v := os.Getenv("WEBSHARE_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("WEBSHARE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WEBSHARE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
