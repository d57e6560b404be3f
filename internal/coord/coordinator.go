// Package coord runs the background fetch-analyze-store pipeline.
package coord

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/skim/internal/analyze"
	"github.com/abelbrown/skim/internal/fetch"
	"github.com/abelbrown/skim/internal/logging"
	"github.com/abelbrown/skim/internal/store"
	"github.com/abelbrown/skim/internal/ui"
)

// fetchTimeout is the timeout for each individual fetch.
const fetchTimeout = 30 * time.Second

// maxConcurrentFetches limits parallel fetch operations.
const maxConcurrentFetches = 5

// fetcher interface for dependency injection (testing).
type fetcher interface {
	Fetch(ctx context.Context, src fetch.Source) ([]store.Article, error)
}

// Coordinator manages background fetching and analysis.
// Uses context cancellation as the ONLY stop mechanism.
type Coordinator struct {
	store    *store.Store
	fetcher  fetcher
	analyzer *analyze.Analyzer
	sources  []fetch.Source // IMMUTABLE: set at construction, never modified
	interval time.Duration
	wg       sync.WaitGroup
}

// New creates a Coordinator.
func New(s *store.Store, f *fetch.Fetcher, a *analyze.Analyzer, sources []fetch.Source, interval time.Duration) *Coordinator {
	return newWithFetcher(s, f, a, sources, interval)
}

// newWithFetcher allows injecting a custom fetcher (for testing).
func newWithFetcher(s *store.Store, f fetcher, a *analyze.Analyzer, sources []fetch.Source, interval time.Duration) *Coordinator {
	sourcesCopy := make([]fetch.Source, len(sources))
	copy(sourcesCopy, sources)

	return &Coordinator{
		store:    s,
		fetcher:  f,
		analyzer: a,
		sources:  sourcesCopy,
		interval: interval,
	}
}

// Start begins background fetching. Call with a cancellable context.
// Performs an initial fetch immediately, then on every interval tick.
// program may be nil (no UI notifications).
func (c *Coordinator) Start(ctx context.Context, program *tea.Program) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.fetchAll(ctx, program)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.fetchAll(ctx, program)
			}
		}
	}()
}

// Wait blocks until the background goroutine exits.
// Call after canceling the context passed to Start.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// fetchAll fans out over all sources, analyzes whatever arrives, and
// stores it. Per-source failures are logged and skipped; the cycle
// continues for the remaining sources.
func (c *Coordinator) fetchAll(ctx context.Context, program *tea.Program) {
	var mu sync.Mutex
	totalNew := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, src := range c.sources {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, fetchTimeout)
			defer cancel()

			articles, err := c.fetcher.Fetch(fctx, src)
			if err != nil {
				logging.Warn("fetch failed", "source", src.Name, "error", err)
				return nil
			}

			for i := range articles {
				c.annotate(&articles[i])
			}

			saved, err := c.store.SaveArticles(articles)
			if err != nil {
				logging.Error("save failed", "source", src.Name, "error", err)
				return nil
			}

			mu.Lock()
			totalNew += saved
			mu.Unlock()

			logging.Debug("fetched", "source", src.Name, "items", len(articles), "new", saved)
			return nil
		})
	}
	g.Wait()

	if program != nil {
		program.Send(ui.ArticlesUpdatedMsg{New: totalNew})
	}
	logging.Info("fetch cycle complete", "sources", len(c.sources), "new", totalNew)
}

// annotate fills an article's analysis fields from its cleaned content.
// Title and body are analyzed together - short feed entries often carry
// their entire substance in the headline.
func (c *Coordinator) annotate(a *store.Article) {
	text := a.Title + ". " + a.Content

	rec := c.analyzer.Analyze(text)
	a.Sentiment = rec.Sentiment
	a.Signal = rec.Signal
	a.Topics = rec.Topics
	a.TLDR = rec.TLDR
	a.ReadMinutes = rec.ReadMinutes
	a.AnalyzedAt = time.Now()
}
