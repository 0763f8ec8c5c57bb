package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the API client and the store need to talk to the
// backend: where it lives, how long to wait for it, and where the session id
// is remembered between runs.
type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MediaTimeout time.Duration `mapstructure:"media_timeout"`
	SessionFile  string        `mapstructure:"session_file"`
}

// Load reads the configuration from a YAML file and returns a Config instance.
// Environment variables prefixed with LEFTOVERMART_ override file values.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("leftovermart")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("base_url", "http://localhost:9499")
	v.SetDefault("timeout", 2*time.Second)
	v.SetDefault("media_timeout", 5*time.Second)
	v.SetDefault("session_file", ".leftovermart-session.json")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base_url %q: %w", cfg.BaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.MediaTimeout <= 0 {
		cfg.MediaTimeout = 5 * time.Second
	}

	return &cfg, nil
}
