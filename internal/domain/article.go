package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ArticleTitleMaxLength   = 500
	ArticleContentMaxLength = 100_000
	ArticleURLMaxLength     = 300
	ArticleSourceMaxLength  = 100
)

// Article is a catalog row. URL is the dedup key: the catalog holds at most one
// Article per URL.
type Article struct {
	ID            uuid.UUID  `json:"id"`
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	WordCount     int        `json:"word_count"`
	URL           string     `json:"url"`
	ChannelID     *uuid.UUID `json:"channel"`
	ChannelName   *string    `json:"-"`
	Source        *string    `json:"source"`
	PublishedDate *time.Time `json:"published_date"`
	IngestedDate  time.Time  `json:"date"`
}

// AttachChannel points the article at ch, or detaches it when ch is nil.
func (a *Article) AttachChannel(ch *Channel) {
	if ch == nil {
		a.ChannelID = nil
		a.ChannelName = nil
		return
	}
	id, name := ch.ID, ch.Name
	a.ChannelID = &id
	a.ChannelName = &name
}
