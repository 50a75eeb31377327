package factory

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("missing type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "solr")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg requires a connection string", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "")
		_, err := LoadEnv()
		assert.Error(t, err)
	})

	t.Run("pg", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "pg")
		t.Setenv("PG_CONNECTION_STRING", "postgres://u:p@localhost/news")
		t.Setenv("PG_MAX_CONNS", "8")
		t.Setenv("PG_RUN_MIGRATIONS", "")
		t.Setenv("ES_ADDRESSES", "")

		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, storage.PG, cfg.Type)
		assert.Equal(t, int32(8), cfg.Pg.MaxConns)
		assert.True(t, cfg.RunMigrations)
		assert.Nil(t, cfg.Es)
	})

	t.Run("in memory with mirror", func(t *testing.T) {
		t.Setenv("STORAGE_TYPE", "in_mem")
		t.Setenv("ES_ADDRESSES", "http://localhost:9200")

		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Nil(t, cfg.Pg)
		require.NotNil(t, cfg.Es)
		assert.Equal(t, []string{"http://localhost:9200"}, cfg.Es.Addresses)
	})
}

func TestNewCatalog_InMem(t *testing.T) {
	catalog, err := NewCatalog(context.Background(), StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.True(t, catalog.Healthy(context.Background()))

	indexer, err := NewIndexer(context.Background(), StorageConfig{Type: storage.InMem})
	require.NoError(t, err)
	assert.Nil(t, indexer)
}

func TestNewCatalog_Unsupported(t *testing.T) {
	_, err := NewCatalog(context.Background(), StorageConfig{Type: "solr"})
	assert.Error(t, err)
}
