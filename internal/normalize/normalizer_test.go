package normalize

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/newsapi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func raw(url, title, content string) newsapi.RawArticle {
	r := newsapi.RawArticle{}
	if url != "" {
		r.URL = ptr(url)
	}
	if title != "" {
		r.Title = ptr(title)
	}
	if content != "" {
		r.Content = ptr(content)
	}
	return r
}

func TestBatch_DropsIncompleteRecords(t *testing.T) {
	raws := []newsapi.RawArticle{
		raw("https://a.example/1", "A", "body"),
		raw("", "B", "body"),
		raw("https://a.example/3", "", "body"),
		raw("https://a.example/4", "D", ""),
		raw("https://a.example/5", "E", "body"),
	}

	articles, err := New().Batch(raws, nil)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "https://a.example/1", articles[0].URL)
	assert.Equal(t, "https://a.example/5", articles[1].URL)
}

func TestBatch_MapsFields(t *testing.T) {
	ch := &domain.Channel{ID: uuid.New(), Name: "science"}
	r := raw("https://a.example/1", "Title", "Snippet")
	r.PublishedAt = ptr("2024-03-01T10:20:30Z")
	r.Source = &newsapi.Source{ID: ptr("bbc-news"), Name: "BBC News"}

	articles, err := New().Batch([]newsapi.RawArticle{r}, ch)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "Title", *a.Title)
	assert.Equal(t, "Snippet", *a.Content)
	assert.Equal(t, "bbc-news", *a.Source)
	assert.Equal(t, ch.ID, *a.ChannelID)
	assert.Equal(t, "science", *a.ChannelName)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC), *a.PublishedDate)
	assert.Equal(t, 0, a.WordCount)
}

func TestBatch_SourceWithoutIDIsUnset(t *testing.T) {
	r := raw("https://a.example/1", "Title", "Snippet")
	r.Source = &newsapi.Source{Name: "Some Blog"}

	articles, err := New().Batch([]newsapi.RawArticle{r}, nil)
	require.NoError(t, err)
	assert.Nil(t, articles[0].Source)
	assert.Nil(t, articles[0].ChannelID)
}

func TestBatch_InvalidRecordFailsWholeBatch(t *testing.T) {
	bad := raw("https://a.example/2", strings.Repeat("t", domain.ArticleTitleMaxLength+1), "body")
	bad.PublishedAt = ptr("yesterday")
	raws := []newsapi.RawArticle{
		raw("https://a.example/1", "ok", "body"),
		bad,
	}

	articles, err := New().Batch(raws, nil)
	assert.Nil(t, articles)

	var vErr *apperr.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "articles[1].title")
	assert.Contains(t, vErr.Fields, "articles[1].published_date")
	assert.NotContains(t, vErr.Fields, "articles[0].title")
}

func TestBatch_Empty(t *testing.T) {
	articles, err := New().Batch(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestSubmission(t *testing.T) {
	channelID := uuid.New()

	tests := []struct {
		name       string
		in         Submission
		wantFields []string
		check      func(t *testing.T, res *SubmissionResult)
	}{
		{
			name: "url only",
			in:   Submission{URL: " https://a.example/x "},
			check: func(t *testing.T, res *SubmissionResult) {
				assert.Equal(t, "https://a.example/x", res.Article.URL)
				assert.Nil(t, res.ChannelID)
				assert.Nil(t, res.ChannelName)
			},
		},
		{
			name: "all fields",
			in: Submission{
				URL:           "https://a.example/x",
				Title:         ptr("t"),
				Content:       ptr("c"),
				Source:        ptr("cnn"),
				PublishedDate: ptr("2024-03-01T10:20:30.5+02:00"),
				Channel:       ptr(channelID.String()),
				ChannelName:   ptr("sports"),
			},
			check: func(t *testing.T, res *SubmissionResult) {
				assert.Equal(t, channelID, *res.ChannelID)
				assert.Equal(t, "sports", *res.ChannelName)
				assert.Equal(t, 8, res.Article.PublishedDate.Hour())
			},
		},
		{
			name:       "missing url",
			in:         Submission{},
			wantFields: []string{"url"},
		},
		{
			name:       "url too long",
			in:         Submission{URL: "https://a.example/" + strings.Repeat("x", domain.ArticleURLMaxLength)},
			wantFields: []string{"url"},
		},
		{
			name:       "bad channel id and date",
			in:         Submission{URL: "https://a.example/x", Channel: ptr("nope"), PublishedDate: ptr("01-02-2024")},
			wantFields: []string{"channel", "published_date"},
		},
		{
			name:       "channel name too long",
			in:         Submission{URL: "https://a.example/x", ChannelName: ptr(strings.Repeat("n", domain.ChannelNameMaxLength+1))},
			wantFields: []string{"channel_name"},
		},
		{
			name:       "source too long",
			in:         Submission{URL: "https://a.example/x", Source: ptr(strings.Repeat("s", domain.ArticleSourceMaxLength+1))},
			wantFields: []string{"source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New().Submission(tt.in)
			if len(tt.wantFields) > 0 {
				var vErr *apperr.ValidationError
				require.True(t, errors.As(err, &vErr))
				for _, f := range tt.wantFields {
					assert.Contains(t, vErr.Fields, f)
				}
				assert.Len(t, vErr.Fields, len(tt.wantFields))
				return
			}
			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestValidateChannelName(t *testing.T) {
	assert.Empty(t, ValidateChannelName("business"))
	assert.NotEmpty(t, ValidateChannelName("  "))
	assert.NotEmpty(t, ValidateChannelName(strings.Repeat("x", domain.ChannelNameMaxLength+1)))
}
