package coord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abelbrown/skim/internal/analyze"
	"github.com/abelbrown/skim/internal/fetch"
	"github.com/abelbrown/skim/internal/store"
)

// stubFetcher serves canned articles per source name.
type stubFetcher struct {
	bySource map[string][]store.Article
	errs     map[string]error
}

func (f *stubFetcher) Fetch(ctx context.Context, src fetch.Source) ([]store.Article, error) {
	if err := f.errs[src.Name]; err != nil {
		return nil, err
	}
	return f.bySource[src.Name], nil
}

func stubArticle(id, title, content string) store.Article {
	now := time.Now()
	return store.Article{
		ID:         id,
		SourceName: "stub",
		Title:      title,
		URL:        "https://example.com/" + id,
		Published:  now,
		Fetched:    now,
		Content:    content,
	}
}

func TestFetchAllAnalyzesAndStores(t *testing.T) {
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	f := &stubFetcher{
		bySource: map[string][]store.Article{
			"good": {
				stubArticle("a1", "Neural network research advances",
					"Researchers published a study on machine learning model training."),
			},
		},
		errs: map[string]error{"bad": errors.New("connection refused")},
	}

	c := newWithFetcher(s, f, analyze.NewAnalyzer(analyze.DefaultConfig(), nil),
		[]fetch.Source{{Name: "good", URL: "u1"}, {Name: "bad", URL: "u2"}},
		time.Hour)

	// A failing source must not abort the cycle.
	c.fetchAll(context.Background(), nil)

	got, err := s.GetArticles(10, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("stored %d articles, want 1", len(got))
	}

	a := got[0]
	if a.AnalyzedAt.IsZero() {
		t.Error("article was stored without analysis")
	}
	if len(a.Topics) == 0 {
		t.Error("analysis produced no topics")
	}
	if a.ReadMinutes < 1 {
		t.Errorf("read minutes %d", a.ReadMinutes)
	}
}

func TestFetchAllIgnoresDuplicatesAcrossCycles(t *testing.T) {
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	f := &stubFetcher{
		bySource: map[string][]store.Article{
			"feed": {stubArticle("a1", "Title", "Body text for the article.")},
		},
	}

	c := newWithFetcher(s, f, analyze.NewAnalyzer(analyze.DefaultConfig(), nil),
		[]fetch.Source{{Name: "feed", URL: "u"}}, time.Hour)

	c.fetchAll(context.Background(), nil)
	c.fetchAll(context.Background(), nil)

	got, err := s.GetArticles(10, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("stored %d articles after two cycles, want 1", len(got))
	}
}
