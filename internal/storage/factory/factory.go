package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/es"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/pg"
)

// NewCatalog creates a storage.Catalog based on the storage type
func NewCatalog(ctx context.Context, cfg StorageConfig) (storage.Catalog, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		if cfg.RunMigrations {
			if err := pg.RunMigrations(cfg.Pg.ConnStr); err != nil {
				return nil, err
			}
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewCatalog(pool), nil

	case storage.InMem:
		slog.Warn("Using in-memory catalog, data is lost on restart")
		return in_mem.NewInMemStorer(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewIndexer creates the search mirror, or returns nil when it is not configured.
func NewIndexer(ctx context.Context, cfg StorageConfig) (*es.Indexer, error) {
	if cfg.Es == nil {
		return nil, nil
	}
	indexer, err := es.NewIndexer(ctx, *cfg.Es)
	if err != nil {
		return nil, fmt.Errorf("failed to create search mirror: %w", err)
	}
	return indexer, nil
}
