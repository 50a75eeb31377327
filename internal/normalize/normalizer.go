// Package normalize turns provider records and user submissions into catalog
// articles.
package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/newsapi"
	"github.com/google/uuid"
)

// Submission is a single article submitted by a caller. Only URL is required.
type Submission struct {
	URL           string
	Title         *string
	Content       *string
	Source        *string
	PublishedDate *string
	Channel       *string
	ChannelName   *string
}

// Normalizer validates and maps articles. The zero value is ready to use.
type Normalizer struct{}

func New() *Normalizer {
	return &Normalizer{}
}

// Batch maps raw provider records onto articles attached to channel. Records
// without url, title or content are skipped. A single invalid kept record fails
// the whole batch so nothing from it is written.
func (n *Normalizer) Batch(raws []newsapi.RawArticle, channel *domain.Channel) ([]domain.Article, error) {
	articles := make([]domain.Article, 0, len(raws))
	fields := make(map[string][]string)

	for i, raw := range raws {
		if blank(raw.URL) || blank(raw.Title) || blank(raw.Content) {
			continue
		}

		a := domain.Article{
			URL:     *raw.URL,
			Title:   raw.Title,
			Content: raw.Content,
		}
		if raw.Source != nil && !blank(raw.Source.ID) {
			a.Source = raw.Source.ID
		}
		a.AttachChannel(channel)

		prefix := fmt.Sprintf("articles[%d].", i)
		published, problem := parseTimestamp(raw.PublishedAt)
		if problem != "" {
			fields[prefix+"published_date"] = append(fields[prefix+"published_date"], problem)
		}
		a.PublishedDate = published

		for field, problems := range validateLengths(a) {
			fields[prefix+field] = append(fields[prefix+field], problems...)
		}

		articles = append(articles, a)
	}

	if len(fields) > 0 {
		return nil, apperr.NewFieldValidation("invalid provider articles", fields)
	}
	return articles, nil
}

// SubmissionResult carries the article mapped from a Submission plus the channel
// reference the caller asked for. Resolving the reference is left to the caller.
type SubmissionResult struct {
	Article     domain.Article
	ChannelID   *uuid.UUID
	ChannelName *string
}

func (n *Normalizer) Submission(s Submission) (*SubmissionResult, error) {
	fields := make(map[string][]string)

	url := strings.TrimSpace(s.URL)
	if url == "" {
		fields["url"] = append(fields["url"], "this field is required")
	}

	a := domain.Article{
		URL:     url,
		Title:   s.Title,
		Content: s.Content,
		Source:  s.Source,
	}

	published, problem := parseTimestamp(s.PublishedDate)
	if problem != "" {
		fields["published_date"] = append(fields["published_date"], problem)
	}
	a.PublishedDate = published

	for field, problems := range validateLengths(a) {
		fields[field] = append(fields[field], problems...)
	}

	res := &SubmissionResult{Article: a}

	if !blank(s.Channel) {
		id, err := uuid.Parse(strings.TrimSpace(*s.Channel))
		if err != nil {
			fields["channel"] = append(fields["channel"], "must be a valid channel id")
		} else {
			res.ChannelID = &id
		}
	}
	if !blank(s.ChannelName) {
		name := strings.TrimSpace(*s.ChannelName)
		if problem := ValidateChannelName(name); problem != "" {
			fields["channel_name"] = append(fields["channel_name"], problem)
		}
		res.ChannelName = &name
	}

	if len(fields) > 0 {
		return nil, apperr.NewFieldValidation("invalid article", fields)
	}
	return res, nil
}

// ValidateChannelName returns a problem description, or "" when name is usable.
func ValidateChannelName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "this field may not be blank"
	}
	if utf8.RuneCountInString(name) > domain.ChannelNameMaxLength {
		return maxLengthProblem(domain.ChannelNameMaxLength)
	}
	return ""
}

func validateLengths(a domain.Article) map[string][]string {
	fields := make(map[string][]string)
	check := func(field string, value *string, limit int) {
		if value != nil && utf8.RuneCountInString(*value) > limit {
			fields[field] = append(fields[field], maxLengthProblem(limit))
		}
	}

	check("url", &a.URL, domain.ArticleURLMaxLength)
	check("title", a.Title, domain.ArticleTitleMaxLength)
	check("content", a.Content, domain.ArticleContentMaxLength)
	check("source", a.Source, domain.ArticleSourceMaxLength)
	return fields
}

func maxLengthProblem(limit int) string {
	return fmt.Sprintf("ensure this field has no more than %d characters", limit)
}

// parseTimestamp accepts RFC 3339 with or without fractional seconds. An absent
// or empty value is not an error.
func parseTimestamp(raw *string) (*time.Time, string) {
	if blank(raw) {
		return nil, ""
	}
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(*raw))
	if err != nil {
		return nil, "datetime has wrong format, use RFC 3339"
	}
	t = t.UTC()
	return &t, ""
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
