// Package config loads service settings from defaults, an optional TOML
// file and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Environment variables that override file values.
const (
	EnvDatabaseURL    = "DATABASE_URL"
	EnvListen         = "PIPELINE_LISTEN"
	EnvAllowedOrigins = "PIPELINE_ALLOWED_ORIGINS"
	EnvLogLevel       = "PIPELINE_LOG_LEVEL"
	EnvBodyLimit      = "PIPELINE_BODY_LIMIT"
)

const defaultBodyLimit = 4 << 20

// Config holds the settings for the HTTP service and the CLI.
type Config struct {
	Listen         string   `toml:"listen"`
	AllowedOrigins []string `toml:"allowed_origins"`
	// DatabaseURL enables report storage when non-empty.
	DatabaseURL string `toml:"database_url"`
	LogLevel    string `toml:"log_level"`
	BodyLimit   int    `toml:"body_limit"`
}

// Default returns the settings used for local frontend development.
func Default() Config {
	return Config{
		Listen: ":8000",
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
		},
		LogLevel:  "info",
		BodyLimit: defaultBodyLimit,
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result. Unknown keys in the file are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvListen); ok && v != "" {
		c.Listen = v
	}
	if v, ok := lookup(EnvDatabaseURL); ok {
		c.DatabaseURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup(EnvBodyLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvBodyLimit, err)
		}
		c.BodyLimit = n
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Listen == "" {
		errs = append(errs, errors.New("config: listen address is empty"))
	}
	if c.BodyLimit <= 0 {
		errs = append(errs, fmt.Errorf("config: body_limit must be positive, got %d", c.BodyLimit))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			errs = append(errs, errors.New("config: wildcard origin cannot be combined with credentials"))
		}
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// StoreEnabled reports whether validation reports should be persisted.
func (c Config) StoreEnabled() bool {
	return c.DatabaseURL != ""
}
