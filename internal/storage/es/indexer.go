package es

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Indexer mirrors catalog articles into an Elasticsearch index, one document
// per article id.
type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of an article.
type Document struct {
	ID            string     `json:"id"`
	Title         string     `json:"title,omitempty"`
	Content       string     `json:"content,omitempty"`
	WordCount     int        `json:"word_count"`
	URL           string     `json:"url"`
	ChannelID     string     `json:"channel_id,omitempty"`
	ChannelName   string     `json:"channel_name,omitempty"`
	Source        string     `json:"source,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	IngestedDate  time.Time  `json:"ingested_date"`
	IndexedAt     time.Time  `json:"indexed_at"`
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexer := &Indexer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := indexer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return indexer, nil
}

// Index writes article under its id, replacing any earlier version.
func (e *Indexer) Index(ctx context.Context, article domain.Article) error {
	doc := ToDocument(article, time.Now())

	res, err := e.client.Index(e.indexName).Id(doc.ID).Document(doc).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	slog.Debug("Article mirrored to search index", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return nil
}

func ToDocument(a domain.Article, indexedAt time.Time) Document {
	doc := Document{
		ID:            a.ID.String(),
		WordCount:     a.WordCount,
		URL:           a.URL,
		PublishedDate: a.PublishedDate,
		IngestedDate:  a.IngestedDate,
		IndexedAt:     indexedAt,
	}
	if a.Title != nil {
		doc.Title = *a.Title
	}
	if a.Content != nil {
		doc.Content = *a.Content
	}
	if a.ChannelID != nil {
		doc.ChannelID = a.ChannelID.String()
	}
	if a.ChannelName != nil {
		doc.ChannelName = *a.ChannelName
	}
	if a.Source != nil {
		doc.Source = *a.Source
	}
	return doc
}

func (e *Indexer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":             types.NewKeywordProperty(),
			"title":          textWithKeyword(),
			"content":        types.NewTextProperty(),
			"word_count":     types.NewIntegerNumberProperty(),
			"url":            types.NewKeywordProperty(),
			"channel_id":     types.NewKeywordProperty(),
			"channel_name":   types.NewKeywordProperty(),
			"source":         types.NewKeywordProperty(),
			"published_date": types.NewDateProperty(),
			"ingested_date":  types.NewDateProperty(),
			"indexed_at":     types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func textWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
