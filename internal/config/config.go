package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "AQUA_"

type Config interface {
	EnvConfig
	ClientConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetTrustProxyHeaders() bool
}

type ClientConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
	GetTokenMaxAge() time.Duration
	GetRingRadius() float64
}

type mainConfig struct {
	Port              string        `koanf:"port" yaml:"port"`
	AppName           string        `koanf:"app_name" yaml:"app_name"`
	Env               string        `koanf:"env" yaml:"env"`
	LogLevel          string        `koanf:"log_level" yaml:"log_level"`
	TrustProxyHeaders bool          `koanf:"trust_proxy_headers" yaml:"trust_proxy_headers"` // honour X-Forwarded-Proto
	APIBaseURL        string        `koanf:"api_base_url" yaml:"api_base_url"`
	RequestTimeout    time.Duration `koanf:"request_timeout" yaml:"request_timeout"`
	TokenMaxAge       time.Duration `koanf:"token_max_age" yaml:"token_max_age"`
	RingRadius        float64       `koanf:"ring_radius" yaml:"ring_radius"`
}

var _ Config = mainConfig{}

func defaults() mainConfig {
	return mainConfig{
		Port:        "8080",
		AppName:     "Aqua",
		Env:         "DEV",
		LogLevel:    "info",
		APIBaseURL:  "http://127.0.0.1:5000",
		TokenMaxAge: 30 * 24 * time.Hour,
		RingRadius:  90,
	}
}

// Load reads configuration from the given YAML file (if path is set and the
// file exists), then overlays environment variable overrides (AQUA_*).
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// AQUA_API_BASE_URL -> api_base_url, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c mainConfig) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}
	if c.RingRadius <= 0 {
		return fmt.Errorf("ring_radius must be positive")
	}
	return nil
}
