package store

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testArticle(id, url string) Article {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	return Article{
		ID:          id,
		SourceName:  "Test Feed",
		Title:       "Article " + id,
		URL:         url,
		Author:      "someone",
		Published:   now,
		Fetched:     now,
		Content:     "Some article body text.",
		Sentiment:   0.1,
		Signal:      0.5,
		Topics:      []string{"tech"},
		TLDR:        "A short summary.",
		ReadMinutes: 1,
		AnalyzedAt:  now,
	}
}

func TestSaveAndGetArticles(t *testing.T) {
	s := testStore(t)

	saved, err := s.SaveArticles([]Article{
		testArticle("a1", "https://example.com/1"),
		testArticle("a2", "https://example.com/2"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved != 2 {
		t.Errorf("saved %d, want 2", saved)
	}

	got, err := s.GetArticles(10, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d articles, want 2", len(got))
	}
	if !reflect.DeepEqual(got[0].Topics, []string{"tech"}) {
		t.Errorf("topics did not round-trip: %v", got[0].Topics)
	}
	if got[0].TLDR != "A short summary." {
		t.Errorf("tldr %q", got[0].TLDR)
	}
}

func TestSaveArticlesIgnoresDuplicateURL(t *testing.T) {
	s := testStore(t)

	first := testArticle("a1", "https://example.com/story")
	if _, err := s.SaveArticles([]Article{first}); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Same URL under a fresh id, as a refetch produces.
	dup := testArticle("a9", "https://example.com/story")
	saved, err := s.SaveArticles([]Article{dup})
	if err != nil {
		t.Fatalf("save duplicate: %v", err)
	}
	if saved != 0 {
		t.Errorf("duplicate counted as new: saved = %d", saved)
	}

	got, err := s.GetArticles(10, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("store holds %d articles, want 1", len(got))
	}
}

func TestGetArticlesExcludesRead(t *testing.T) {
	s := testStore(t)

	if _, err := s.SaveArticles([]Article{
		testArticle("a1", "https://example.com/1"),
		testArticle("a2", "https://example.com/2"),
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.MarkRead("a1", time.Now()); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	unread, err := s.GetArticles(10, false)
	if err != nil {
		t.Fatalf("get unread: %v", err)
	}
	if len(unread) != 1 || unread[0].ID != "a2" {
		t.Errorf("unread = %v, want only a2", unread)
	}

	all, err := s.GetArticles(10, true)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d articles, want 2", len(all))
	}
}

func TestGetArticle(t *testing.T) {
	s := testStore(t)

	if _, err := s.SaveArticles([]Article{testArticle("a1", "https://example.com/1")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetArticle("a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Article a1" {
		t.Errorf("title %q", got.Title)
	}

	if _, err := s.GetArticle("missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("missing article returned %v, want sql.ErrNoRows", err)
	}
}

func TestMarkReadAppendsEvent(t *testing.T) {
	s := testStore(t)

	a := testArticle("a1", "https://example.com/1")
	a.Topics = []string{"ai", "science"}
	if _, err := s.SaveArticles([]Article{a}); err != nil {
		t.Fatalf("save: %v", err)
	}

	readAt := time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC)
	if err := s.MarkRead("a1", readAt); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	events, err := s.RecentReads(10)
	if err != nil {
		t.Fatalf("recent reads: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].ArticleID != "a1" {
		t.Errorf("event article %q", events[0].ArticleID)
	}
	if !reflect.DeepEqual(events[0].Topics, []string{"ai", "science"}) {
		t.Errorf("event topics %v, want article's topics at read time", events[0].Topics)
	}
	if !events[0].ReadAt.Equal(readAt) {
		t.Errorf("event time %v, want %v", events[0].ReadAt, readAt)
	}
}

func TestMarkReadUnknownArticle(t *testing.T) {
	s := testStore(t)
	if err := s.MarkRead("nope", time.Now()); err == nil {
		t.Error("marking a missing article read should fail")
	}
}

func TestRecentReadsNewestFirst(t *testing.T) {
	s := testStore(t)

	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a1", "a2", "a3"} {
		a := testArticle(id, "https://example.com/"+id)
		if _, err := s.SaveArticles([]Article{a}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
		if err := s.MarkRead(id, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("mark read %s: %v", id, err)
		}
	}

	events, err := s.RecentReads(2)
	if err != nil {
		t.Fatalf("recent reads: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want limit 2", len(events))
	}
	if events[0].ArticleID != "a3" || events[1].ArticleID != "a2" {
		t.Errorf("events out of order: %s, %s", events[0].ArticleID, events[1].ArticleID)
	}
}
