package fetcher

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxBytes  = 10 << 20
	defaultUserAgent = "news-finder/1.0 (+word-count)"
)

type Config struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
	// RatePerSecond caps outgoing page fetches. Zero disables the limit.
	RatePerSecond float64
}

func DefaultConfig() Config {
	return Config{
		Timeout:   defaultTimeout,
		MaxBytes:  defaultMaxBytes,
		UserAgent: defaultUserAgent,
	}
}

func LoadConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if raw := os.Getenv("PAGE_FETCH_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PAGE_FETCH_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	if raw := os.Getenv("PAGE_FETCH_MAX_BYTES"); raw != "" {
		maxBytes, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxBytes <= 0 {
			return nil, fmt.Errorf("invalid PAGE_FETCH_MAX_BYTES: %q", raw)
		}
		cfg.MaxBytes = maxBytes
	}

	if raw := os.Getenv("PAGE_FETCH_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps < 0 {
			return nil, fmt.Errorf("invalid PAGE_FETCH_RPS: %q", raw)
		}
		cfg.RatePerSecond = rps
	}

	if ua := os.Getenv("PAGE_FETCH_USER_AGENT"); ua != "" {
		cfg.UserAgent = ua
	}

	return &cfg, nil
}
