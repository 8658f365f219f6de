package config

import (
	"fmt"

	"github.com/campus-tools/schedfetch/internal/term"
)

func validate(c *Config) error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be > 0")
	}
	if c.SiteRoot == "" {
		return fmt.Errorf("site root must not be empty")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be > 0")
	}
	// An empty term is inferred later; a provided one must be recognized.
	if c.Term != "" {
		if err := term.Validate(c.Term); err != nil {
			return err
		}
	}
	if c.Year != 0 && (c.Year < 1990 || c.Year > 2100) {
		return fmt.Errorf("implausible year %d", c.Year)
	}
	return nil
}
