package newsapi

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	defaultBaseURL  = "https://newsapi.org"
	defaultLanguage = "en"
	defaultTimeout  = 10 * time.Second
)

type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

func LoadConfigFromEnv() (*Config, error) {
	apiKey := os.Getenv("NEWSAPI_KEY")
	if apiKey == "" {
		return nil, errors.New("NEWSAPI_KEY environment variable not set")
	}

	cfg := &Config{
		APIKey:   apiKey,
		BaseURL:  os.Getenv("NEWSAPI_BASE_URL"),
		Language: os.Getenv("NEWSAPI_LANGUAGE"),
		Timeout:  defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}

	if raw := os.Getenv("NEWSAPI_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid NEWSAPI_TIMEOUT: %w", err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}
