package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/es"
	"github.com/DjordjeVuckovic/news-finder/internal/storage/pg"
)

type StorageConfig struct {
	storage.Type
	Pg            *pg.PoolConfig
	RunMigrations bool
	// Es configures the optional search mirror; nil disables it.
	Es *es.ClientConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Error("STORAGE_TYPE environment variable is not set")
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	cfg := &StorageConfig{Type: storageType}

	if storageType == storage.PG {
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if raw := os.Getenv("PG_MAX_CONNS"); raw != "" {
			maxConns, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || maxConns <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS: %q", raw)
			}
			cfg.Pg.MaxConns = int32(maxConns)
		}
		cfg.RunMigrations = os.Getenv("PG_RUN_MIGRATIONS") != "false"
	}

	esCfg, err := es.LoadEnv()
	if err != nil {
		return nil, err
	}
	cfg.Es = esCfg

	return cfg, nil
}
