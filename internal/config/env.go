package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	env "github.com/netflix/go-env"
)

// envOverrides lists the environment variables that override file settings.
// Fields are strings so that unset variables can be told apart from zero values.
type envOverrides struct {
	Endpoint     string `env:"ACTIVITYFINDER_ENDPOINT"`
	Timeout      string `env:"ACTIVITYFINDER_TIMEOUT"`
	RateLimit    string `env:"ACTIVITYFINDER_RATE_LIMIT"`
	DiscardStale string `env:"ACTIVITYFINDER_DISCARD_STALE"`
	LogLevel     string `env:"ACTIVITYFINDER_LOG_LEVEL"`
	LogFile      string `env:"ACTIVITYFINDER_LOG_FILE"`
}

// ApplyEnviron applies overrides from the process environment
func ApplyEnviron(cfg *Config) error {
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return ApplyEnv(cfg, es)
}

// ApplyEnv applies overrides from es and re-validates the result
func ApplyEnv(cfg *Config, es env.EnvSet) error {
	var o envOverrides
	if err := env.Unmarshal(es, &o); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if v := strings.TrimSpace(o.Endpoint); v != "" {
		cfg.Provider.Endpoint = v
	}
	if v := strings.TrimSpace(o.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ACTIVITYFINDER_TIMEOUT: %w", err)
		}
		cfg.Provider.Timeout = Duration(d)
	}
	if v := strings.TrimSpace(o.RateLimit); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ACTIVITYFINDER_RATE_LIMIT: %w", err)
		}
		cfg.Provider.RateLimit = r
	}
	if v := strings.TrimSpace(o.DiscardStale); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ACTIVITYFINDER_DISCARD_STALE: %w", err)
		}
		cfg.Search.DiscardStale = b
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(o.LogFile); v != "" {
		cfg.Log.File = v
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
