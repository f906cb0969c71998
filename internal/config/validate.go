package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"activityfinder/internal/domain"
	"activityfinder/internal/logging"
)

// Defaults and limits
const (
	DefaultEndpoint      = "http://localhost:3000"
	DefaultTimeout       = 15 * time.Second
	MinTimeout           = time.Second
	MaxTimeout           = 2 * time.Minute
	DefaultRateLimit     = 5.0
	DefaultBurst         = 5
	MaxFilterDebounce    = 5 * time.Second
	DefaultSkeletonCount = 6
	MaxSkeletonCount     = 24
)

// Duration is a time.Duration stored as a string ("15s") in TOML
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Validate validates configuration values and adjusts them to safe ranges.
// It returns an error only for values that cannot be corrected.
func Validate(cfg *Config) error {
	if err := validateEndpoint(cfg.Provider.Endpoint); err != nil {
		return err
	}

	// Validate timeout
	switch {
	case cfg.Provider.Timeout <= 0:
		cfg.Provider.Timeout = Duration(DefaultTimeout)
	case cfg.Provider.Timeout.Std() < MinTimeout:
		cfg.Provider.Timeout = Duration(MinTimeout)
	case cfg.Provider.Timeout.Std() > MaxTimeout:
		cfg.Provider.Timeout = Duration(MaxTimeout)
	}

	// Validate rate limiting
	if cfg.Provider.RateLimit < 0 {
		cfg.Provider.RateLimit = 0
	}
	if cfg.Provider.Burst < 1 {
		cfg.Provider.Burst = 1
	}

	// Validate debounce
	if cfg.Search.FilterDebounce < 0 {
		cfg.Search.FilterDebounce = 0
	}
	if cfg.Search.FilterDebounce.Std() > MaxFilterDebounce {
		cfg.Search.FilterDebounce = Duration(MaxFilterDebounce)
	}

	// Validate UI
	if cfg.UI.SkeletonCount < 0 {
		cfg.UI.SkeletonCount = 0
	}
	if cfg.UI.SkeletonCount > MaxSkeletonCount {
		cfg.UI.SkeletonCount = MaxSkeletonCount
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = logging.InfoLevel
	}
	if !logging.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", cfg.Log.Level)
	}

	for i, p := range cfg.Presets {
		if err := validatePreset(p); err != nil {
			return fmt.Errorf("presets[%d]: %w", i, err)
		}
	}

	return nil
}

func validateEndpoint(endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return fmt.Errorf("provider.endpoint is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("provider.endpoint %q is invalid: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("provider.endpoint %q must use http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("provider.endpoint %q has no host", endpoint)
	}
	return nil
}

func validatePreset(p PresetConfig) error {
	if utf8.RuneCountInString(strings.TrimSpace(p.Query)) < domain.MinInputLength {
		return fmt.Errorf("query %q is shorter than %d characters", p.Query, domain.MinInputLength)
	}
	if utf8.RuneCountInString(strings.TrimSpace(p.Location)) < domain.MinInputLength {
		return fmt.Errorf("location %q is shorter than %d characters", p.Location, domain.MinInputLength)
	}
	if p.Category != "" {
		if _, ok := domain.ParseCategory(p.Category); !ok {
			return fmt.Errorf("unknown category %q", p.Category)
		}
	}
	return nil
}
