package track

import (
	"sort"
	"time"
)

// TopicCount pairs a topic with how often it appeared.
type TopicCount struct {
	Topic string
	Count int
}

// ReadingStats summarizes reading activity over a period.
type ReadingStats struct {
	PeriodDays     int
	TotalArticles  int
	ArticlesPerDay float64
	TopTopics      []TopicCount
}

// Stats summarizes the last days of reading from the event log.
// Events are expected newest first. now is injected for testability.
func Stats(events []ReadEvent, days int, now time.Time) ReadingStats {
	if days < 1 {
		days = 1
	}
	cutoff := now.AddDate(0, 0, -days)

	var recent []ReadEvent
	for _, ev := range events {
		if ev.ReadAt.After(cutoff) {
			recent = append(recent, ev)
		}
	}

	counts := TopicCounts(recent)
	top := make([]TopicCount, 0, len(counts))
	for topic, count := range counts {
		top = append(top, TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Topic < top[j].Topic
	})
	if len(top) > 10 {
		top = top[:10]
	}

	return ReadingStats{
		PeriodDays:     days,
		TotalArticles:  len(recent),
		ArticlesPerDay: float64(len(recent)) / float64(days),
		TopTopics:      top,
	}
}
