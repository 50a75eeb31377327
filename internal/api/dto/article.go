package dto

import (
	"time"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/normalize"
	"github.com/google/uuid"
)

// ArticleView is the listing shape of an article.
type ArticleView struct {
	Title         *string    `json:"title"`
	URL           string     `json:"url"`
	Source        *string    `json:"source"`
	PublishedDate *time.Time `json:"published_date"`
	ChannelName   *string    `json:"channel_name"`
}

func NewArticleViews(articles []domain.Article) []ArticleView {
	views := make([]ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, ArticleView{
			Title:         a.Title,
			URL:           a.URL,
			Source:        a.Source,
			PublishedDate: a.PublishedDate,
			ChannelName:   a.ChannelName,
		})
	}
	return views
}

// Article is the full row returned after a submission.
type Article struct {
	ID            uuid.UUID  `json:"id"`
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	WordCount     int        `json:"word_count"`
	URL           string     `json:"url"`
	Channel       *uuid.UUID `json:"channel"`
	Source        *string    `json:"source"`
	PublishedDate *time.Time `json:"published_date"`
	Date          string     `json:"date"`
}

// DateFormat renders the ingestion date, e.g. 02-Jan-2006.
const DateFormat = "02-Jan-2006"

func NewArticles(articles []domain.Article) []Article {
	rows := make([]Article, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, Article{
			ID:            a.ID,
			Title:         a.Title,
			Content:       a.Content,
			WordCount:     a.WordCount,
			URL:           a.URL,
			Channel:       a.ChannelID,
			Source:        a.Source,
			PublishedDate: a.PublishedDate,
			Date:          a.IngestedDate.Format(DateFormat),
		})
	}
	return rows
}

// SubmitArticleRequest is the body of an article submission.
type SubmitArticleRequest struct {
	URL           string  `json:"url" form:"url"`
	Title         *string `json:"title" form:"title"`
	Content       *string `json:"content" form:"content"`
	Source        *string `json:"source" form:"source"`
	PublishedDate *string `json:"published_date" form:"published_date"`
	Channel       *string `json:"channel" form:"channel"`
	ChannelName   *string `json:"channel_name" form:"channel_name"`
}

func (r SubmitArticleRequest) ToSubmission() normalize.Submission {
	return normalize.Submission{
		URL:           r.URL,
		Title:         r.Title,
		Content:       r.Content,
		Source:        r.Source,
		PublishedDate: r.PublishedDate,
		Channel:       r.Channel,
		ChannelName:   r.ChannelName,
	}
}
