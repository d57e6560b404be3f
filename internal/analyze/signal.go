package analyze

import (
	"strings"
	"unicode"
)

// SignalWeights control how the six sub-scores combine into the final
// signal score. The filler weight is subtracted, not added.
type SignalWeights struct {
	Richness     float64 `json:"richness"`      // unique / total content words
	WordLength   float64 `json:"word_length"`   // average content-word length
	HighSignal   float64 `json:"high_signal"`   // analytical-lexicon hits
	Filler       float64 `json:"filler"`        // hype-lexicon penalty
	SentenceFit  float64 `json:"sentence_fit"`  // 15-25 words per sentence
	ContentRatio float64 `json:"content_ratio"` // content words / all tokens
}

// DefaultSignalWeights returns the standard weighting.
func DefaultSignalWeights() SignalWeights {
	return SignalWeights{
		Richness:     0.25,
		WordLength:   0.15,
		HighSignal:   0.20,
		Filler:       0.15,
		SentenceFit:  0.15,
		ContentRatio: 0.10,
	}
}

// lexiconScale converts a per-word hit rate into a [0,1] sub-score:
// one lexicon hit per ten content words saturates the term.
const lexiconScale = 10.0

// SignalScore estimates the information density of text in [0,1].
// Higher means denser. The empty string scores 0.
//
// Six sub-scores, each clamped to [0,1] before weighting: vocabulary
// richness, average word length, high-signal lexicon hits, a filler
// lexicon penalty (subtracted), sentence-length fit, and the
// content-word ratio. The weighted sum is clamped again at the end.
func SignalScore(text string, w SignalWeights) float64 {
	words := extractWords(text)
	if len(words) == 0 {
		return 0.0
	}

	content := make([]string, 0, len(words))
	for _, word := range words {
		if !stopWords[word] {
			content = append(content, word)
		}
	}
	if len(content) == 0 {
		return 0.0
	}

	unique := make(map[string]bool, len(content))
	totalLen := 0
	highHits := 0
	fillerHits := 0
	for _, word := range content {
		unique[word] = true
		totalLen += len(word)
		if highSignalWords[word] {
			highHits++
		}
		if fillerWords[word] {
			fillerHits++
		}
	}

	richness := clamp01(float64(len(unique)) / float64(len(content)))
	avgLen := clamp01(float64(totalLen) / float64(len(content)) / 10.0)
	high := clamp01(float64(highHits) / float64(len(content)) * lexiconScale)
	filler := clamp01(float64(fillerHits) / float64(len(content)) * lexiconScale)
	sentenceFit := clamp01(lengthFit(avgSentenceLength(text)))
	contentRatio := clamp01(float64(len(content)) / float64(len(words)))

	score := richness*w.Richness +
		avgLen*w.WordLength +
		high*w.HighSignal -
		filler*w.Filler +
		sentenceFit*w.SentenceFit +
		contentRatio*w.ContentRatio

	return clamp01(score)
}

// lengthFit peaks at 1.0 for 15-25 words and decays linearly outside
// that band, reaching 0 at zero and at 50 words.
func lengthFit(words float64) float64 {
	switch {
	case words <= 0:
		return 0
	case words < 15:
		return words / 15
	case words <= 25:
		return 1.0
	default:
		return 1.0 - (words-25)/25
	}
}

// avgSentenceLength returns the mean word count per sentence, treating
// the whole text as one sentence when no terminal punctuation exists.
func avgSentenceLength(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		words := len(strings.Fields(text))
		return float64(words)
	}

	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

// extractWords pulls lowercased alphabetic words out of text, splitting
// on any non-letter rune so punctuation never pollutes lexicon lookups.
func extractWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
