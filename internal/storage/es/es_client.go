package es

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/news-finder/pkg/stringsutil"
	"github.com/elastic/go-elasticsearch/v8"
)

const defaultIndexName = "news_articles"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

// LoadEnv returns nil when ES_ADDRESSES is unset: the mirror is optional.
func LoadEnv() (*ClientConfig, error) {
	raw := os.Getenv("ES_ADDRESSES")
	if raw == "" {
		return nil, nil
	}

	addresses := stringsutil.SplitTrimmed(raw, ",")
	if len(addresses) == 0 {
		return nil, fmt.Errorf("ES_ADDRESSES contains no usable address")
	}

	indexName := os.Getenv("ES_INDEX_NAME")
	if indexName == "" {
		indexName = defaultIndexName
	}

	return &ClientConfig{
		Addresses: addresses,
		IndexName: indexName,
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}, nil
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
