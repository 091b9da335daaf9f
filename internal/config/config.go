package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config contains runtime configuration values.
type Config struct {
	PageURL        string
	PageFile       string
	Selector       string
	EndpointURL    string
	Station        string
	RequestTimeout time.Duration
	SendTimeout    time.Duration
	FlushTimeout   time.Duration
	WatchSchedule  string
	LogLevel       string
}

const (
	defaultPageURL      = "https://somafm.com/indiepop/"
	defaultSelector     = ".songplaying"
	defaultEndpointURL  = "https://your-server.com/log"
	defaultStation      = "Indie Pop"
	defaultTimeout      = 30 * time.Second
	defaultSendTimeout  = 0 // transport default
	defaultFlushTimeout = 5 * time.Second
	defaultLogLevel     = "info"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		PageURL:        getenvDefault("NOWPLAYING_PAGE_URL", defaultPageURL),
		PageFile:       getenvDefault("NOWPLAYING_PAGE_FILE", ""),
		Selector:       strings.TrimSpace(getenvDefault("NOWPLAYING_SELECTOR", defaultSelector)),
		EndpointURL:    getenvDefault("LOG_ENDPOINT_URL", defaultEndpointURL),
		Station:        getenvDefault("STATION_LABEL", defaultStation),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		SendTimeout:    parseDurationDefault("SEND_TIMEOUT", defaultSendTimeout),
		FlushTimeout:   parseDurationDefault("FLUSH_TIMEOUT", defaultFlushTimeout),
		WatchSchedule:  strings.TrimSpace(getenvDefault("WATCH_SCHEDULE", "")),
		LogLevel:       getenvDefault("LOG_LEVEL", defaultLogLevel),
	}

	if cfg.Selector == "" {
		return nil, fmt.Errorf("NOWPLAYING_SELECTOR is required")
	}

	if err := validateHTTPURL(cfg.EndpointURL); err != nil {
		return nil, fmt.Errorf("LOG_ENDPOINT_URL: %w", err)
	}

	if cfg.PageFile == "" {
		if err := validateHTTPURL(cfg.PageURL); err != nil {
			return nil, fmt.Errorf("NOWPLAYING_PAGE_URL: %w", err)
		}
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.SendTimeout < 0 {
		cfg.SendTimeout = defaultSendTimeout
	}

	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = defaultFlushTimeout
	}

	return cfg, nil
}

// Watch reports whether the process should poll on a schedule.
func (c *Config) Watch() bool {
	return c.WatchSchedule != ""
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
