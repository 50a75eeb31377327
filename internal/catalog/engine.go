// Package catalog merges articles into the store keyed by url.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/extract"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
)

// PageFetcher returns the raw body of a page, or "" when it cannot be read.
type PageFetcher interface {
	Body(ctx context.Context, url string) string
}

// Mirror receives every row the engine writes.
type Mirror interface {
	Index(ctx context.Context, article domain.Article) error
}

type upsertOptions struct {
	compute   bool
	wordCount *int
}

type UpsertOption func(o *upsertOptions)

// ComputeWordCount fetches the page and measures it when no count was supplied.
func ComputeWordCount() UpsertOption {
	return func(o *upsertOptions) {
		o.compute = true
	}
}

// WithWordCount supplies an already known word count.
func WithWordCount(n int) UpsertOption {
	return func(o *upsertOptions) {
		o.wordCount = &n
	}
}

type EngineOption func(e *Engine)

func WithMirror(m Mirror) EngineOption {
	return func(e *Engine) {
		e.mirror = m
	}
}

// WithCounter replaces the visible-text measure used on fetched pages.
func WithCounter(fn func(body string) int) EngineOption {
	return func(e *Engine) {
		e.count = fn
	}
}

type Engine struct {
	articles storage.ArticleStore
	pages    PageFetcher
	count    func(body string) int
	mirror   Mirror
}

func NewEngine(articles storage.ArticleStore, pages PageFetcher, opts ...EngineOption) *Engine {
	e := &Engine{
		articles: articles,
		pages:    pages,
		count:    extract.WordCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MeasurePage fetches url and returns its word count. Unreachable pages count 0.
func (e *Engine) MeasurePage(ctx context.Context, url string) int {
	if e.pages == nil {
		return 0
	}
	return e.count(e.pages.Body(ctx, url))
}

// Upsert inserts article when its url is new. For a known url only the word
// count is refreshed, and only when a count is known.
func (e *Engine) Upsert(ctx context.Context, article domain.Article, opts ...UpsertOption) (*domain.Article, error) {
	o := &upsertOptions{}
	for _, opt := range opts {
		opt(o)
	}

	existing, err := e.articles.FindByURL(ctx, article.URL)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up article %s: %w", article.URL, err)
	}

	if existing == nil {
		if o.wordCount == nil && o.compute {
			n := e.MeasurePage(ctx, article.URL)
			o.wordCount = &n
		}
		if o.wordCount != nil {
			article.WordCount = *o.wordCount
		}

		row, created, err := e.articles.Insert(ctx, article)
		if err != nil {
			return nil, fmt.Errorf("failed to insert article %s: %w", article.URL, err)
		}
		if created {
			slog.Debug("Article inserted", "url", row.URL, "word_count", row.WordCount)
			e.mirrorRow(ctx, *row)
			return row, nil
		}
		// Lost the insert race; another writer owns the row now.
		existing = row
	}

	if o.wordCount == nil {
		if !o.compute {
			return existing, nil
		}
		n := e.MeasurePage(ctx, article.URL)
		o.wordCount = &n
	}

	if existing.WordCount == *o.wordCount {
		return existing, nil
	}

	row, err := e.articles.UpdateWordCount(ctx, article.URL, *o.wordCount)
	if err != nil {
		return nil, fmt.Errorf("failed to update word count of %s: %w", article.URL, err)
	}
	slog.Debug("Article word count updated", "url", row.URL, "word_count", row.WordCount)
	e.mirrorRow(ctx, *row)
	return row, nil
}

func (e *Engine) mirrorRow(ctx context.Context, article domain.Article) {
	if e.mirror == nil {
		return
	}
	if err := e.mirror.Index(ctx, article); err != nil {
		slog.Error("Failed to mirror article", "url", article.URL, "error", err)
	}
}
