package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for token lifetimes, in minutes. Overridable per service
// via YAML; the login path uses the access-token lifetime, everything
// else falls back to the codec default.
const (
	defaultTokenTTLMinutes = 15
	accessTokenTTLMinutes  = 30
)

// Config holds a service's configuration. Every service shares the
// same shape; each reads its own file under configs/.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		// Secret is the shared JWT signing secret. It is sourced
		// from the JWT_SECRET environment variable only, never from
		// the YAML file, and must be identical across the auth
		// service and every resource service.
		Secret string `yaml:"-"`

		DefaultTokenTTLMinutes int64 `yaml:"default_token_ttl_minutes"`
		AccessTokenTTLMinutes  int64 `yaml:"access_token_ttl_minutes"`
	} `yaml:"auth"`
}

// LoadConfig reads configuration from the specified YAML file and the
// process environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.Auth.Secret = os.Getenv("JWT_SECRET")
	if config.Auth.Secret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	if config.Auth.DefaultTokenTTLMinutes <= 0 {
		config.Auth.DefaultTokenTTLMinutes = defaultTokenTTLMinutes
	}
	if config.Auth.AccessTokenTTLMinutes <= 0 {
		config.Auth.AccessTokenTTLMinutes = accessTokenTTLMinutes
	}

	return config, nil
}

// DefaultTokenTTL is the codec-level token lifetime.
func (c *Config) DefaultTokenTTL() time.Duration {
	return time.Duration(c.Auth.DefaultTokenTTLMinutes) * time.Minute
}

// AccessTokenTTL is the lifetime of tokens minted at login.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.Auth.AccessTokenTTLMinutes) * time.Minute
}
