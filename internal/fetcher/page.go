// Package fetcher retrieves raw article pages for word-count enrichment.
package fetcher

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

type PageFetcherOption func(f *PageFetcher)

// PageFetcher downloads page bodies. It never returns an error: any failure
// yields an empty body.
type PageFetcher struct {
	http      *http.Client
	limiter   *rate.Limiter
	maxBytes  int64
	userAgent string
}

func NewPageFetcher(cfg Config, opts ...PageFetcherOption) *PageFetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	f := &PageFetcher{
		http:      &http.Client{Timeout: cfg.Timeout},
		maxBytes:  cfg.MaxBytes,
		userAgent: cfg.UserAgent,
	}
	if cfg.RatePerSecond > 0 {
		burst := int(math.Max(1, math.Ceil(cfg.RatePerSecond)))
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithHttpClient(httpClient *http.Client) PageFetcherOption {
	return func(f *PageFetcher) {
		f.http = httpClient
	}
}

// Body returns the page at rawURL, or "" when it cannot be retrieved.
func (f *PageFetcher) Body(ctx context.Context, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		slog.Debug("Skipping page fetch for unsupported url", "url", rawURL)
		return ""
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			slog.Debug("Page fetch rate limit wait aborted", "url", rawURL, "error", err)
			return ""
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.http.Do(req)
	if err != nil {
		slog.Debug("Page fetch failed", "url", rawURL, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("Page fetch returned non-success status", "url", rawURL, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		slog.Debug("Page body read failed", "url", rawURL, "error", err)
		return ""
	}

	return string(body)
}
