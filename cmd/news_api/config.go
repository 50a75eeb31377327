package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-finder/internal/api/server"
	"github.com/DjordjeVuckovic/news-finder/internal/fetcher"
	"github.com/DjordjeVuckovic/news-finder/internal/news"
	"github.com/DjordjeVuckovic/news-finder/internal/newsapi"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-finder/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsAPIConfig struct {
	LogLevel         slog.Level
	ServerConfig     server.Config
	StorageConfig    factory.StorageConfig
	ProviderConfig   newsapi.Config
	FetcherConfig    fetcher.Config
	IngestConfig     news.Config
	ChannelsSeedPath string
}

func (as *AppConfig) Load() (*NewsAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration from environment", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	providerCfg, err := newsapi.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load news provider configuration from environment", "error", err)
		return nil, err
	}

	fetcherCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load page fetcher configuration from environment", "error", err)
		return nil, err
	}

	ingestCfg, err := news.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load ingestion configuration from environment", "error", err)
		return nil, err
	}

	return &NewsAPIConfig{
		LogLevel:         env.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		ServerConfig:     *serverCfg,
		StorageConfig:    *storageCfg,
		ProviderConfig:   *providerCfg,
		FetcherConfig:    *fetcherCfg,
		IngestConfig:     ingestCfg,
		ChannelsSeedPath: os.Getenv("CHANNELS_SEED_PATH"),
	}, nil
}
