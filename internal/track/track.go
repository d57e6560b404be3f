// Package track follows what the reader actually reads and detects
// drift: recent consumption piling up on a single topic.
//
// Everything here is a pure function over an append-only read-event log.
// The consumption window is a derived view, rebuildable from the log at
// any time; nothing in this package holds state.
package track

import "time"

// ReadEvent records one article being marked read. Append-only.
type ReadEvent struct {
	ArticleID string
	Topics    []string
	ReadAt    time.Time
}

// Config carries the drift-detection knobs.
type Config struct {
	WindowSize int     `json:"window_size"` // recent reads considered, default 10
	Threshold  float64 `json:"threshold"`   // dominant fraction that triggers, default 0.6
	MinSamples int     `json:"min_samples"` // reads required before triggering, default 5
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		WindowSize: 10,
		Threshold:  0.6,
		MinSamples: 5,
	}
}

// Window returns the w most recent events. Events are expected newest
// first, as the store returns them. The result never exceeds w.
func Window(events []ReadEvent, w int) []ReadEvent {
	if w < 0 {
		w = 0
	}
	if len(events) <= w {
		return events
	}
	return events[:w]
}

// TopicCounts tallies how many events in the window mention each topic.
// An event with multiple topics contributes to each of them.
func TopicCounts(events []ReadEvent) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		for _, topic := range ev.Topics {
			counts[topic]++
		}
	}
	return counts
}
