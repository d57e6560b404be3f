package analyze

import (
	"math/rand"
	"strings"
)

// minChainKeys is the sparsity floor for the generative path: a chain
// with fewer distinct keys than this cannot wander far enough to be
// interesting, so the dispatcher falls back to extraction.
const minChainKeys = 3

// minGeneratedWords is the shortest generative output accepted before
// falling back to extraction.
const minGeneratedWords = 10

// minSentenceWords filters out fragments left over from abbreviations
// and list markers when splitting sentences.
const minSentenceWords = 3

// firstSentenceBonus boosts the opening sentence, which in news prose
// usually carries the lede.
const firstSentenceBonus = 1.5

// SplitSentences splits text on terminal punctuation into ordered
// sentences, dropping fragments shorter than three words.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if len(strings.Fields(s)) >= minSentenceWords {
			sentences = append(sentences, s)
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			// Only break when followed by whitespace (or end of text) so
			// decimals and abbreviations like "v1.2" stay intact.
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}

// scoreSentences scores each sentence by frequency-weighted keyword
// overlap with the whole document, a 1.5x bonus for the first sentence,
// and a length-fit factor peaking at 15-25 words.
func scoreSentences(sentences []string) []float64 {
	keywords := make([][]string, len(sentences))
	freq := make(map[string]int)
	for i, s := range sentences {
		for _, w := range extractWords(s) {
			if stopWords[w] || len(w) <= 2 {
				continue
			}
			keywords[i] = append(keywords[i], w)
			freq[w]++
		}
	}

	scores := make([]float64, len(sentences))
	for i := range sentences {
		if len(keywords[i]) == 0 {
			continue
		}

		sum := 0
		for _, kw := range keywords[i] {
			sum += freq[kw]
		}
		keywordScore := float64(sum) / float64(len(keywords[i]))

		bonus := 1.0
		if i == 0 {
			bonus = firstSentenceBonus
		}

		fit := lengthFit(float64(len(strings.Fields(sentences[i]))))

		scores[i] = keywordScore * bonus * fit
	}
	return scores
}

// ExtractiveSummary selects the maxSentences highest-scoring sentences
// and joins them in original document order. Score rank never changes
// presentation order. Text with no usable sentences yields "".
func ExtractiveSummary(text string, maxSentences int) string {
	if strings.TrimSpace(text) == "" || maxSentences < 1 {
		return ""
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= maxSentences {
		return strings.Join(sentences, " ")
	}

	scores := scoreSentences(sentences)

	// Pick top-K indices by score, then restore document order by
	// selecting ascending. Ties keep the earlier sentence.
	selected := make(map[int]bool, maxSentences)
	for k := 0; k < maxSentences; k++ {
		best := -1
		for i := range sentences {
			if selected[i] {
				continue
			}
			if best == -1 || scores[i] > scores[best] {
				best = i
			}
		}
		selected[best] = true
	}

	var out []string
	for i := range sentences {
		if selected[i] {
			out = append(out, sentences[i])
		}
	}
	return strings.Join(out, " ")
}

// TLDR produces a short summary of cleaned article text.
//
// Texts under lengthThreshold words take the extractive path. Longer
// texts take the generative path: build a chain, sample from it, and
// fall back to extraction when the chain turns out sparse (too few
// distinct keys, or the walk died early). The sparsity check has to
// come after chain construction - it is not observable up front.
// Output on every path is truncated to maxWords.
func TLDR(text string, ngram, sentences, lengthThreshold, maxWords int, rng *rand.Rand) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if len(strings.Fields(text)) < lengthThreshold {
		return truncateWords(ExtractiveSummary(text, sentences), maxWords)
	}

	chain := BuildChain(text, ngram)
	if len(chain) < minChainKeys {
		return truncateWords(ExtractiveSummary(text, sentences), maxWords)
	}

	generated, err := Generate(chain, nil, maxWords, rng)
	if err != nil || len(strings.Fields(generated)) < minGeneratedWords {
		return truncateWords(ExtractiveSummary(text, sentences), maxWords)
	}

	return truncateWords(generated, maxWords)
}

// truncateWords cuts text to at most maxWords words, marking the cut
// with an ellipsis.
func truncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
