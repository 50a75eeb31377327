package news

import (
	"fmt"
	"os"
	"strconv"
)

const defaultEnrichWorkers = 4

type Config struct {
	// EnrichLive measures each provider article's page during live queries.
	EnrichLive    bool
	EnrichWorkers int
}

func DefaultConfig() Config {
	return Config{EnrichWorkers: defaultEnrichWorkers}
}

func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if raw := os.Getenv("INGEST_ENRICH_LIVE"); raw != "" {
		enrich, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INGEST_ENRICH_LIVE: %w", err)
		}
		cfg.EnrichLive = enrich
	}
	if raw := os.Getenv("INGEST_ENRICH_WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil || workers <= 0 {
			return Config{}, fmt.Errorf("invalid INGEST_ENRICH_WORKERS: %q", raw)
		}
		cfg.EnrichWorkers = workers
	}
	return cfg, nil
}
