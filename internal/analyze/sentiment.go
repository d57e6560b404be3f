package analyze

import "math"

// SentimentScorer scores the emotional valence of text in [-1, 1].
// The scorer is a pluggable collaborator: the default below is a small
// lexicon model, but anything implementing this interface (a VADER
// port, an API client) can be swapped in at construction time.
type SentimentScorer interface {
	Score(text string) float64
}

// LexiconSentiment is the default scorer: counts valence-lexicon hits
// and normalizes by total hits, damped toward neutral for texts with
// few hits. Deterministic and dependency-free.
type LexiconSentiment struct{}

// Score implements SentimentScorer.
func (LexiconSentiment) Score(text string) float64 {
	pos, neg := 0, 0
	for _, w := range extractWords(text) {
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return 0.0
	}

	raw := float64(pos-neg) / float64(total)

	// Damp single-hit texts: one "crisis" in a paragraph is not a -1.0.
	confidence := math.Min(float64(total)/4.0, 1.0)
	return raw * confidence
}
