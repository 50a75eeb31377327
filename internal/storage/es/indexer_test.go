package es

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocument(t *testing.T) {
	title, source, channelName := "Title", "cnn", "science"
	channelID := uuid.New()
	published := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	now := time.Now()

	a := domain.Article{
		ID:            uuid.New(),
		Title:         &title,
		WordCount:     12,
		URL:           "https://example.com/a",
		ChannelID:     &channelID,
		ChannelName:   &channelName,
		Source:        &source,
		PublishedDate: &published,
		IngestedDate:  now,
	}

	doc := ToDocument(a, now)

	assert.Equal(t, a.ID.String(), doc.ID)
	assert.Equal(t, "Title", doc.Title)
	assert.Empty(t, doc.Content)
	assert.Equal(t, 12, doc.WordCount)
	assert.Equal(t, channelID.String(), doc.ChannelID)
	assert.Equal(t, "science", doc.ChannelName)
	assert.Equal(t, "cnn", doc.Source)
	assert.Equal(t, &published, doc.PublishedDate)
	assert.Equal(t, now, doc.IndexedAt)
}

func TestLoadEnv(t *testing.T) {
	t.Run("disabled without addresses", func(t *testing.T) {
		t.Setenv("ES_ADDRESSES", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parses addresses and defaults index", func(t *testing.T) {
		t.Setenv("ES_ADDRESSES", " http://a:9200, ,http://b:9200")
		t.Setenv("ES_INDEX_NAME", "")
		cfg, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Addresses)
		assert.Equal(t, defaultIndexName, cfg.IndexName)
	})

	t.Run("rejects blank address list", func(t *testing.T) {
		t.Setenv("ES_ADDRESSES", " , ")
		_, err := LoadEnv()
		assert.Error(t, err)
	})
}
