// Package news serves article listings and submissions on top of the catalog.
package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/DjordjeVuckovic/news-finder/internal/catalog"
	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/newsapi"
	"github.com/DjordjeVuckovic/news-finder/internal/normalize"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/DjordjeVuckovic/news-finder/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// HeadlineProvider is the upstream source of live articles.
type HeadlineProvider interface {
	TopHeadlines(ctx context.Context, filter newsapi.Filter) ([]newsapi.RawArticle, error)
	Language() string
}

type QueryResult struct {
	Mode  Mode
	Items []domain.Article
}

type Service struct {
	cfg        Config
	provider   HeadlineProvider
	normalizer *normalize.Normalizer
	engine     *catalog.Engine
	articles   storage.ArticleStore
	channels   storage.ChannelStore
}

func NewService(
	cfg Config,
	provider HeadlineProvider,
	catalogStore storage.Catalog,
	engine *catalog.Engine,
) *Service {
	if cfg.EnrichWorkers <= 0 {
		cfg.EnrichWorkers = defaultEnrichWorkers
	}
	return &Service{
		cfg:        cfg,
		provider:   provider,
		normalizer: normalize.New(),
		engine:     engine,
		articles:   catalogStore.Articles(),
		channels:   catalogStore.Channels(),
	}
}

// Query lists articles. With a word count range the catalog answers directly;
// otherwise the provider is queried and its articles are merged into the catalog.
func (s *Service) Query(ctx context.Context, params QueryParams) (*QueryResult, error) {
	page, err := pagination.ParseOffsetRequest(params.Page, params.PageSize)
	if err != nil {
		return nil, apperr.NewValidation(err.Error())
	}

	var channel *domain.Channel
	if name := strings.TrimSpace(params.ChannelName); name != "" {
		channel, err = s.channels.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, apperr.NewNotFound("channel", "Please provide valid channel_name in query.")
			}
			return nil, fmt.Errorf("failed to resolve channel %s: %w", name, err)
		}
	}

	if strings.TrimSpace(params.WordCount) != "" {
		rng, err := ParseWordCountRange(params.WordCount)
		if err != nil {
			return nil, err
		}
		items, err := s.articles.FilterByWordCountRange(ctx, rng.Min, rng.Max)
		if err != nil {
			return nil, fmt.Errorf("failed to filter articles: %w", err)
		}
		return &QueryResult{Mode: ModeLocal, Items: items}, nil
	}

	filter := newsapi.Filter{
		Language: s.provider.Language(),
		Page:     page.Page,
		PageSize: page.Size,
		Sources:  strings.TrimSpace(params.Source),
	}
	if channel != nil {
		filter.Category = channel.Name
	}

	items, err := s.ingest(ctx, filter, channel)
	if err != nil {
		return nil, err
	}
	return &QueryResult{Mode: ModeLive, Items: items}, nil
}

func (s *Service) ingest(ctx context.Context, filter newsapi.Filter, channel *domain.Channel) ([]domain.Article, error) {
	raws, err := s.provider.TopHeadlines(ctx, filter)
	if err != nil {
		return nil, err
	}

	articles, err := s.normalizer.Batch(raws, channel)
	if err != nil {
		return nil, err
	}

	var counts []int
	if s.cfg.EnrichLive && len(articles) > 0 {
		counts = s.measure(ctx, articles)
	}

	for i, a := range articles {
		var opts []catalog.UpsertOption
		if counts != nil {
			opts = append(opts, catalog.WithWordCount(counts[i]))
		}
		if _, err := s.engine.Upsert(ctx, a, opts...); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, apperr.NewNotFound("channel", "Please provide valid channel_name in query.")
			}
			return nil, fmt.Errorf("failed to store article %s: %w", a.URL, err)
		}
	}

	slog.Info("Live headlines ingested", "count", len(articles), "channel", filter.Category, "page", filter.Page)
	return articles, nil
}

// measure fetches every article page with bounded concurrency. Failed fetches
// count as 0 so the group never errors.
func (s *Service) measure(ctx context.Context, articles []domain.Article) []int {
	counts := make([]int, len(articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.EnrichWorkers)
	for i, a := range articles {
		g.Go(func() error {
			counts[i] = s.engine.MeasurePage(gctx, a.URL)
			return nil
		})
	}
	_ = g.Wait()

	return counts
}

// Submit stores one caller supplied article, always measuring its page, and
// returns the catalog rows for its url.
func (s *Service) Submit(ctx context.Context, sub normalize.Submission) ([]domain.Article, error) {
	res, err := s.normalizer.Submission(sub)
	if err != nil {
		return nil, err
	}

	known, err := s.articles.FindByURL(ctx, res.Article.URL)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up article %s: %w", res.Article.URL, err)
	}

	channel, err := s.submissionChannel(ctx, res, known == nil)
	if err != nil {
		return nil, err
	}
	article := res.Article
	article.AttachChannel(channel)

	row, err := s.engine.Upsert(ctx, article, catalog.ComputeWordCount())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.NewNotFound("channel", "Channel doesn't exist in database")
		}
		return nil, err
	}

	slog.Info("Article submitted", "url", row.URL, "word_count", row.WordCount)
	return []domain.Article{*row}, nil
}

// submissionChannel resolves the requested channel. A channel named by
// channel_name is only created when the article is new, since an existing row
// keeps its channel.
func (s *Service) submissionChannel(ctx context.Context, res *normalize.SubmissionResult, isNew bool) (*domain.Channel, error) {
	if res.ChannelID != nil {
		ch, err := s.channels.FindByID(ctx, *res.ChannelID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, apperr.NewNotFound("channel", "Channel doesn't exist in database")
			}
			return nil, fmt.Errorf("failed to resolve channel %s: %w", res.ChannelID, err)
		}
		if res.ChannelName != nil && *res.ChannelName != ch.Name {
			return nil, apperr.NewFieldValidation("invalid article", map[string][]string{
				"channel_name": {"does not match the channel referenced by channel"},
			})
		}
		return ch, nil
	}

	if res.ChannelName != nil && isNew {
		ch, _, err := s.channels.Ensure(ctx, *res.ChannelName)
		if err != nil {
			return nil, fmt.Errorf("failed to ensure channel %s: %w", *res.ChannelName, err)
		}
		return ch, nil
	}
	return nil, nil
}
