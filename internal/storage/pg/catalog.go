package pg

import (
	"context"

	"github.com/DjordjeVuckovic/news-finder/internal/storage"
)

// Catalog is the Postgres-backed storage.Catalog.
type Catalog struct {
	pool     *ConnectionPool
	articles *ArticleStore
	channels *ChannelStore
}

func NewCatalog(pool *ConnectionPool) *Catalog {
	return &Catalog{
		pool:     pool,
		articles: NewArticleStore(pool),
		channels: NewChannelStore(pool),
	}
}

func (c *Catalog) Articles() storage.ArticleStore { return c.articles }
func (c *Catalog) Channels() storage.ChannelStore { return c.channels }

func (c *Catalog) Healthy(ctx context.Context) bool {
	if c.pool == nil {
		return false
	}
	return c.pool.Ping(ctx) == nil
}

func (c *Catalog) Close() {
	c.pool.Close()
}
