package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/google/uuid"
)

// InMemStorer is a process-local catalog. A single lock covers articles and
// channels so check-then-write sequences are atomic.
type InMemStorer struct {
	storageLock sync.RWMutex
	articles    map[string]domain.Article
	channels    map[uuid.UUID]domain.Channel
	now         func() time.Time
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		articles: make(map[string]domain.Article),
		channels: make(map[uuid.UUID]domain.Channel),
		now:      time.Now,
	}
}

func (s *InMemStorer) Articles() storage.ArticleStore { return s }
func (s *InMemStorer) Channels() storage.ChannelStore { return (*channelStore)(s) }

func (s *InMemStorer) Healthy(ctx context.Context) bool { return true }

func (s *InMemStorer) Close() {}

func (s *InMemStorer) FindByURL(ctx context.Context, url string) (*domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	a, ok := s.articles[url]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return s.withChannel(a), nil
}

func (s *InMemStorer) Insert(ctx context.Context, article domain.Article) (*domain.Article, bool, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if existing, ok := s.articles[article.URL]; ok {
		return s.withChannel(existing), false, nil
	}

	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.IngestedDate.IsZero() {
		article.IngestedDate = s.now()
	}
	if article.ChannelID != nil {
		if _, ok := s.channels[*article.ChannelID]; !ok {
			return nil, false, fmt.Errorf("channel %s: %w", article.ChannelID, storage.ErrNotFound)
		}
	}
	article.ChannelName = nil
	s.articles[article.URL] = article

	slog.Debug("Saving article to in-memory storage", "url", article.URL, "id", article.ID)
	return s.withChannel(article), true, nil
}

func (s *InMemStorer) UpdateWordCount(ctx context.Context, url string, count int) (*domain.Article, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	a, ok := s.articles[url]
	if !ok {
		return nil, storage.ErrNotFound
	}
	a.WordCount = count
	s.articles[url] = a
	return s.withChannel(a), nil
}

func (s *InMemStorer) FilterByWordCountRange(ctx context.Context, min, max int) ([]domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	result := make([]domain.Article, 0)
	for _, a := range s.articles {
		if a.WordCount >= min && a.WordCount <= max {
			result = append(result, *s.withChannel(a))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].WordCount != result[j].WordCount {
			return result[i].WordCount < result[j].WordCount
		}
		return result[i].URL < result[j].URL
	})
	return result, nil
}

// withChannel returns a copy of a with the channel name resolved. Callers hold the lock.
func (s *InMemStorer) withChannel(a domain.Article) *domain.Article {
	a.ChannelName = nil
	if a.ChannelID != nil {
		if ch, ok := s.channels[*a.ChannelID]; ok {
			name := ch.Name
			a.ChannelName = &name
		}
	}
	return &a
}

type channelStore InMemStorer

func (c *channelStore) FindByName(ctx context.Context, name string) (*domain.Channel, error) {
	c.storageLock.RLock()
	defer c.storageLock.RUnlock()
	return c.findByName(name)
}

func (c *channelStore) findByName(name string) (*domain.Channel, error) {
	for _, ch := range c.channels {
		if ch.Name == name {
			found := ch
			return &found, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (c *channelStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	c.storageLock.RLock()
	defer c.storageLock.RUnlock()

	ch, ok := c.channels[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &ch, nil
}

func (c *channelStore) Ensure(ctx context.Context, name string) (*domain.Channel, bool, error) {
	c.storageLock.Lock()
	defer c.storageLock.Unlock()

	if existing, err := c.findByName(name); err == nil {
		return existing, false, nil
	}

	ch := domain.Channel{ID: uuid.New(), Name: name}
	c.channels[ch.ID] = ch
	slog.Info("Channel created", "name", name, "id", ch.ID)
	return &ch, true, nil
}

func (c *channelStore) List(ctx context.Context) ([]domain.Channel, error) {
	c.storageLock.RLock()
	defer c.storageLock.RUnlock()

	result := make([]domain.Channel, 0, len(c.channels))
	for _, ch := range c.channels {
		result = append(result, ch)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (c *channelStore) Delete(ctx context.Context, id uuid.UUID) error {
	c.storageLock.Lock()
	defer c.storageLock.Unlock()

	if _, ok := c.channels[id]; !ok {
		return storage.ErrNotFound
	}
	delete(c.channels, id)

	for url, a := range c.articles {
		if a.ChannelID != nil && *a.ChannelID == id {
			a.ChannelID = nil
			c.articles[url] = a
		}
	}
	return nil
}
