package storage

import (
	"context"
	"errors"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("storage: record not found")

// ArticleStore is the article side of the catalog. Implementations must keep at
// most one row per URL.
type ArticleStore interface {
	// FindByURL returns ErrNotFound when no row has the url.
	FindByURL(ctx context.Context, url string) (*domain.Article, error)
	// Insert adds the article unless a row with the same url already exists, in
	// which case it reports created=false and leaves the existing row alone.
	Insert(ctx context.Context, article domain.Article) (row *domain.Article, created bool, err error)
	// UpdateWordCount changes only the word count of the row with url.
	UpdateWordCount(ctx context.Context, url string, count int) (*domain.Article, error)
	// FilterByWordCountRange returns rows with min <= word_count <= max.
	FilterByWordCountRange(ctx context.Context, min, max int) ([]domain.Article, error)
}

// ChannelStore is the channel side of the catalog. Names are unique.
type ChannelStore interface {
	FindByName(ctx context.Context, name string) (*domain.Channel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Channel, error)
	// Ensure returns the channel named name, creating it when absent.
	Ensure(ctx context.Context, name string) (ch *domain.Channel, created bool, err error)
	List(ctx context.Context) ([]domain.Channel, error)
	// Delete removes the channel and detaches every article that referenced it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Catalog bundles both stores over one backend.
type Catalog interface {
	Articles() ArticleStore
	Channels() ChannelStore
	Healthy(ctx context.Context) bool
	Close()
}
