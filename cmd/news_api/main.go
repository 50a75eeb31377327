// Package main News Finder API
//
// Aggregates top headlines, keeps a deduplicated article catalog and serves
// word-count-range queries from it.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/api/router"
	"github.com/DjordjeVuckovic/news-finder/internal/api/server"
	"github.com/DjordjeVuckovic/news-finder/internal/catalog"
	"github.com/DjordjeVuckovic/news-finder/internal/fetcher"
	"github.com/DjordjeVuckovic/news-finder/internal/news"
	"github.com/DjordjeVuckovic/news-finder/internal/newsapi"
	"github.com/DjordjeVuckovic/news-finder/internal/reader"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const startupTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := factory.NewCatalog(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create catalog storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	s := server.New(&cfg.ServerConfig, store).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "News Finder API is running")
	})

	provider, err := newsapi.NewClient(cfg.ProviderConfig)
	if err != nil {
		slog.Error("Failed to create news provider client", "error", err)
		os.Exit(1)
	}

	var engineOpts []catalog.EngineOption
	indexer, err := factory.NewIndexer(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create search mirror", "error", err)
		os.Exit(1)
	}
	if indexer != nil {
		engineOpts = append(engineOpts, catalog.WithMirror(indexer))
		slog.Info("Search mirror enabled", "index", cfg.StorageConfig.Es.IndexName)
	} else {
		slog.Info("Search mirror disabled")
	}

	engine := catalog.NewEngine(store.Articles(), fetcher.NewPageFetcher(cfg.FetcherConfig), engineOpts...)
	channelService := news.NewChannelService(store.Channels())

	if cfg.ChannelsSeedPath != "" {
		seed, err := reader.LoadSeedFile(cfg.ChannelsSeedPath)
		if err != nil {
			slog.Error("Failed to load channel seed", "error", err)
			os.Exit(1)
		}
		if err := channelService.Seed(ctx, seed.Names()); err != nil {
			slog.Error("Failed to seed channels", "error", err)
			os.Exit(1)
		}
	}

	newsService := news.NewService(cfg.IngestConfig, provider, store, engine)

	router.NewNewsRouter(s.Echo, newsService).Bind()
	router.NewChannelRouter(s.Echo, channelService).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
