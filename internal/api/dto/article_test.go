package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticleViews(t *testing.T) {
	title, name := "t", "science"
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	views := NewArticleViews([]domain.Article{{
		Title:         &title,
		URL:           "https://a.example",
		PublishedDate: &published,
		ChannelName:   &name,
		WordCount:     7,
	}})

	b, err := json.Marshal(views)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"title": "t",
		"url": "https://a.example",
		"source": null,
		"published_date": "2024-03-01T10:00:00Z",
		"channel_name": "science"
	}]`, string(b))
}

func TestNewArticleViews_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(NewArticleViews(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestNewArticles(t *testing.T) {
	id, channel := uuid.New(), uuid.New()
	rows := NewArticles([]domain.Article{{
		ID:           id,
		URL:          "https://a.example",
		WordCount:    12,
		ChannelID:    &channel,
		IngestedDate: time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC),
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, &channel, rows[0].Channel)
	assert.Equal(t, 12, rows[0].WordCount)
	assert.Equal(t, "01-Mar-2024", rows[0].Date)
}
