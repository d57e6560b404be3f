package track

import (
	"sort"

	"github.com/abelbrown/skim/internal/analyze"
)

// maxSuggestions caps the diversification list shown to the reader.
const maxSuggestions = 3

// Nudge is a drift decision. Triggered is true only when the window has
// enough samples and one topic's fraction exceeds the threshold.
// Whether a triggered nudge is actually shown (or shown repeatedly) is
// the presentation layer's call, not this package's.
type Nudge struct {
	Triggered        bool
	DominantTopic    string
	DominantFraction float64
	SuggestedTopics  []string
}

// EvaluateDrift inspects the recent read window and decides whether to
// nudge the reader toward other topics.
//
// The dominant fraction is events-mentioning-the-topic over events in
// the window. A window smaller than cfg.MinSamples never triggers -
// that is an expected state, not an error. Called on every read event.
func EvaluateDrift(events []ReadEvent, cfg Config) Nudge {
	window := Window(events, cfg.WindowSize)
	if len(window) < cfg.MinSamples {
		return Nudge{}
	}

	counts := TopicCounts(window)
	if len(counts) == 0 {
		return Nudge{}
	}

	dominant, dominantCount := "", 0
	for topic, count := range counts {
		if count > dominantCount || (count == dominantCount && topic < dominant) {
			dominant, dominantCount = topic, count
		}
	}

	fraction := float64(dominantCount) / float64(len(window))
	if fraction <= cfg.Threshold {
		return Nudge{}
	}

	return Nudge{
		Triggered:        true,
		DominantTopic:    dominant,
		DominantFraction: fraction,
		SuggestedTopics:  suggestTopics(counts, dominant),
	}
}

// suggestTopics ranks the canonical labels the reader is seeing least,
// ascending by in-window frequency with alphabetical tie-breaks.
// Topics absent from the window rank first.
func suggestTopics(counts map[string]int, dominant string) []string {
	candidates := make([]string, 0, len(analyze.TopicLabels()))
	for _, label := range analyze.TopicLabels() {
		if label != dominant {
			candidates = append(candidates, label)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := counts[candidates[i]], counts[candidates[j]]
		if ci != cj {
			return ci < cj
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}
