// Package fetch retrieves articles from RSS/Atom feeds and cleans them
// for analysis.
package fetch

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	"github.com/abelbrown/skim/internal/store"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// Source represents a feed source configuration.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Fetcher retrieves articles from feed sources. A global rate limiter
// keeps refresh cycles polite regardless of how many sources exist.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher with the given HTTP timeout. Requests
// are limited to two per second across all sources.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
}

// Fetch retrieves articles from a source. Does NOT analyze or store
// them - the caller decides what to do with the result. Respects
// context cancellation, including while waiting on the rate limiter.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]store.Article, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "skim/0.1 (+https://github.com/abelbrown/skim)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	now := time.Now()
	articles := make([]store.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, convertItem(item, src, now))
	}
	return articles, nil
}

// convertItem maps a gofeed item onto a store.Article with cleaned
// content. Analysis fields are left zero for the coordinator to fill.
func convertItem(item *gofeed.Item, src Source, now time.Time) store.Article {
	published := now
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	// Prefer full content, fall back to the description.
	body := item.Content
	if body == "" {
		body = item.Description
	}

	author := ""
	if len(item.Authors) > 0 {
		author = item.Authors[0].Name
	}

	return store.Article{
		ID:         articleID(item.Link),
		SourceName: src.Name,
		Title:      Text(item.Title),
		URL:        item.Link,
		Author:     author,
		Published:  published,
		Fetched:    now,
		Content:    Text(body),
	}
}

// articleID derives a stable ID from the article URL.
func articleID(url string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(url)))[:16]
}
