// Package newsapi is a client for the top-headlines endpoint of newsapi.org.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
)

const topHeadlinesPath = "/v2/top-headlines"

type ClientOption func(client *Client)

type Client struct {
	base   url.URL
	apiKey string
	lang   string
	http   *http.Client
}

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apperr.NewValidation("missing newsapi key")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid newsapi base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	lang := cfg.Language
	if lang == "" {
		lang = defaultLanguage
	}

	client := &Client{
		base:   *base,
		apiKey: cfg.APIKey,
		lang:   lang,
		http: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

// Language is the default language used when a Filter does not set one.
func (c *Client) Language() string {
	return c.lang
}

// TopHeadlines fetches one page of headlines. Every failure is reported as an
// *apperr.UpstreamError.
func (c *Client) TopHeadlines(ctx context.Context, f Filter) ([]RawArticle, error) {
	reqURL := c.base.JoinPath(topHeadlinesPath)
	reqURL.RawQuery = c.query(f).Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, apperr.NewUpstream("failed to build provider request", 0, err)
	}
	request.Header.Set("X-Api-Key", c.apiKey)
	request.Header.Set("Accept", "application/json")

	slog.Debug("Fetching top headlines", "page", f.Page, "page_size", f.PageSize, "category", f.Category, "sources", f.Sources)

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, apperr.NewUpstream("failed to reach news provider", 0, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.NewUpstream("failed to read provider response", resp.StatusCode, err)
	}

	var payload headlinesResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, apperr.NewUpstream(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), resp.StatusCode, nil)
		}
		return nil, apperr.NewUpstream("malformed provider response", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || payload.Status == "error" {
		msg := payload.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, apperr.NewUpstream(msg, resp.StatusCode, nil)
	}

	slog.Debug("Fetched top headlines", "count", len(payload.Articles), "total_results", payload.TotalResults)
	return payload.Articles, nil
}

func (c *Client) query(f Filter) url.Values {
	q := url.Values{}
	lang := f.Language
	if lang == "" {
		lang = c.lang
	}
	q.Set("language", lang)
	if f.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(f.PageSize))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Sources != "" {
		q.Set("sources", f.Sources)
	}
	return q
}
