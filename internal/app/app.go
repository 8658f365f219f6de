// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/campus-tools/schedfetch/internal/cache"
	"github.com/campus-tools/schedfetch/internal/config"
	"github.com/campus-tools/schedfetch/internal/fetch"
	"github.com/campus-tools/schedfetch/internal/ratelimit"
	"github.com/campus-tools/schedfetch/internal/transport"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	Cache       *cache.ScheduleCache
	RateLimiter ratelimit.RateLimiter
	HTTPClient  *http.Client
	Transport   transport.Transport
	Fetcher     *fetch.Fetcher
	startTime   time.Time
}

// New creates and initializes a new Application with all dependencies:
// logger, schedule cache, rate limiter, HTTP transport, and the fetcher
// for the configured term.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := zerolog.ErrorLevel
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "info":
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.NewConsoleWriter()
	}
	logger := log.Output(logWriter).With().Timestamp().Logger()
	log.Logger = logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	scheduleCache := cache.New()

	limiter := ratelimit.NewHostLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	logger.Debug().
		Float64("rps", cfg.RateLimitRPS).
		Int("burst", cfg.RateLimitBurst).
		Msg("Rate limiter initialized")

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	tr := transport.NewClient(httpClient, limiter, cfg.UserAgent)

	fetcher := fetch.New(tr, scheduleCache, fetch.Options{
		SiteRoot: cfg.SiteRoot,
		Term:     cfg.Term,
		Year:     cfg.Year,
	})
	logger.Debug().
		Str("term", fetcher.Term()).
		Int("year", fetcher.Year()).
		Str("root", fetcher.RootURL()).
		Msg("Fetcher initialized")

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		Cache:       scheduleCache,
		RateLimiter: limiter,
		HTTPClient:  httpClient,
		Transport:   tr,
		Fetcher:     fetcher,
		startTime:   time.Now(),
	}

	logger.Debug().Msg("Application initialized")
	return app, nil
}

// Close gracefully shuts down the application: it drops the cache and
// releases pooled HTTP connections. Errors during shutdown are logged but
// never block other shutdown steps.
func (a *Application) Close(ctx context.Context) error {
	if a.Cache != nil {
		a.Cache.Flush()
	}
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
