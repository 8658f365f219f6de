package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel       = "info"
	DefaultJSONLog        = false
	DefaultUserAgent      = "schedfetch/0.1 (https://github.com/campus-tools/schedfetch)"
	DefaultSiteRoot       = "http://courses.illinois.edu/cis/"
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
)
