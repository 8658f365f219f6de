package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string

	// Schedule source
	SiteRoot string
	Term     string
	Year     int

	// Rate Limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load builds a Config by combining defaults, environment variables, and
// CLI flags. Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		HTTPTimeout:    DefaultHTTPTimeout,
		UserAgent:      DefaultUserAgent,
		SiteRoot:       DefaultSiteRoot,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
	}

	// Override from environment variables
	if v := os.Getenv("SCHEDFETCH_SITE_ROOT"); v != "" {
		cfg.SiteRoot = v
	}
	if v := os.Getenv("SCHEDFETCH_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SCHEDFETCH_TERM"); v != "" {
		cfg.Term = v
	}
	if v := os.Getenv("SCHEDFETCH_YEAR"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			cfg.Year = y
		}
	}

	// Read CLI flags if provided
	if cmd != nil {
		if f := cmd.Flags().Lookup("site"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.SiteRoot = s
			}
		}
		if f := cmd.Flags().Lookup("user-agent"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.UserAgent = s
			}
		}
		if f := cmd.Flags().Lookup("term"); f != nil {
			if s := f.Value.String(); s != "" {
				cfg.Term = s
			}
		}
		if f := cmd.Flags().Lookup("year"); f != nil {
			if s := f.Value.String(); s != "" && s != "0" {
				if y, err := strconv.Atoi(s); err == nil {
					cfg.Year = y
				}
			}
		}
		if f := cmd.Flags().Lookup("timeout"); f != nil {
			if s := f.Value.String(); s != "" {
				if d, err := time.ParseDuration(s); err == nil {
					cfg.HTTPTimeout = d
				}
			}
		}
		if f := cmd.Flags().Lookup("json"); f != nil {
			if f.Value.String() == "true" {
				cfg.JSONLog = true
			}
		}
		if f := cmd.Flags().Lookup("verbose"); f != nil {
			if f.Value.String() == "true" {
				cfg.LogLevel = "debug"
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
