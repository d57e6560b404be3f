package track

import (
	"testing"
	"time"
)

func TestWindow(t *testing.T) {
	events := mkEvents(
		[]string{"ai"}, []string{"tech"}, []string{"crypto"},
		[]string{"science"}, []string{"culture"},
	)

	got := Window(events, 3)
	if len(got) != 3 {
		t.Fatalf("window size %d, want 3", len(got))
	}
	// Newest first: the window keeps the head of the list.
	if got[0].ArticleID != "article-0" || got[2].ArticleID != "article-2" {
		t.Errorf("window kept wrong events: %v", got)
	}

	if got := Window(events, 10); len(got) != len(events) {
		t.Errorf("oversized window returned %d events, want all %d", len(got), len(events))
	}
	if got := Window(events, 0); len(got) != 0 {
		t.Errorf("zero window returned %d events", len(got))
	}
	if got := Window(nil, 5); len(got) != 0 {
		t.Errorf("nil events returned %d", len(got))
	}
}

func TestTopicCounts(t *testing.T) {
	events := mkEvents(
		[]string{"ai", "tech"},
		[]string{"ai"},
		[]string{"science"},
		nil,
	)

	counts := TopicCounts(events)
	if counts["ai"] != 2 {
		t.Errorf("ai count %d, want 2", counts["ai"])
	}
	if counts["tech"] != 1 || counts["science"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if len(counts) != 3 {
		t.Errorf("counted %d topics, want 3: %v", len(counts), counts)
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	events := []ReadEvent{
		{ArticleID: "a", Topics: []string{"ai"}, ReadAt: now.Add(-1 * time.Hour)},
		{ArticleID: "b", Topics: []string{"ai", "tech"}, ReadAt: now.Add(-26 * time.Hour)},
		{ArticleID: "c", Topics: []string{"science"}, ReadAt: now.Add(-3 * 24 * time.Hour)},
		{ArticleID: "d", Topics: []string{"crypto"}, ReadAt: now.Add(-10 * 24 * time.Hour)},
	}

	stats := Stats(events, 7, now)

	if stats.TotalArticles != 3 {
		t.Errorf("total %d, want 3 inside the 7-day period", stats.TotalArticles)
	}
	if stats.PeriodDays != 7 {
		t.Errorf("period %d, want 7", stats.PeriodDays)
	}
	if len(stats.TopTopics) == 0 || stats.TopTopics[0].Topic != "ai" {
		t.Errorf("top topics %v, want ai first", stats.TopTopics)
	}
	if stats.TopTopics[0].Count != 2 {
		t.Errorf("ai count %d, want 2", stats.TopTopics[0].Count)
	}
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil, 7, time.Now())
	if stats.TotalArticles != 0 || stats.ArticlesPerDay != 0 {
		t.Errorf("empty log produced %+v", stats)
	}
}
