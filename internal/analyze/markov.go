// Package analyze computes per-article analysis: an information-density
// (signal) score, topic tags, sentiment, and a generated TL;DR.
//
// Everything in this package is a pure function of its inputs. Randomness
// is injected explicitly so results are reproducible; there is no shared
// mutable state and the functions are safe to call concurrently.
package analyze

import (
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
)

// ErrEmptyChain is returned when generation is requested on a chain with
// no entries. Callers fall back to extractive summarization.
var ErrEmptyChain = errors.New("analyze: empty chain")

// Chain maps an n-gram key (tokens joined by a single space) to the
// tokens observed following it. Duplicates are retained on purpose:
// repetition is the sampling weight.
type Chain map[string][]string

// BuildChain builds an n-gram chain from text. Tokens are lowercased and
// split on whitespace. Text with n or fewer tokens yields an empty chain.
func BuildChain(text string, n int) Chain {
	if n < 1 {
		return Chain{}
	}

	tokens := Tokenize(text)
	if len(tokens) <= n {
		return Chain{}
	}

	chain := make(Chain)
	for i := 0; i+n < len(tokens); i++ {
		key := strings.Join(tokens[i:i+n], " ")
		chain[key] = append(chain[key], tokens[i+n])
	}
	return chain
}

// MergeChains combines chains built from several texts into one,
// concatenating continuation lists. Used to build a per-source "voice"
// chain spanning multiple articles.
func MergeChains(chains ...Chain) Chain {
	merged := make(Chain)
	for _, c := range chains {
		for key, next := range c {
			merged[key] = append(merged[key], next...)
		}
	}
	return merged
}

// Generate performs a random walk over the chain, producing up to
// maxWords tokens. If seed is nil a starting n-gram is chosen uniformly
// among the chain's keys. The walk stops at the word budget or at a
// dead end (a trailing n-gram with no observed continuation).
//
// Output is deterministic for a given rng state. Every emitted token
// appears somewhere in the training text.
func Generate(chain Chain, seed []string, maxWords int, rng *rand.Rand) (string, error) {
	if len(chain) == 0 {
		return "", ErrEmptyChain
	}

	var words []string
	if seed != nil {
		words = append(words, seed...)
	} else {
		// Map iteration order is randomized by the runtime, so sort the
		// keys before sampling to keep output reproducible.
		keys := make([]string, 0, len(chain))
		for k := range chain {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		words = strings.Fields(keys[rng.Intn(len(keys))])
	}

	n := len(words)
	for len(words) < maxWords {
		key := strings.Join(words[len(words)-n:], " ")
		next, ok := chain[key]
		if !ok {
			break
		}
		words = append(words, next[rng.Intn(len(next))])
	}

	return finishSentence(words), nil
}

// ChainEntropy reports the mean per-state entropy of a chain in bits.
// Higher values mean more varied continuations and more chaotic output.
// An empty chain has zero entropy.
func ChainEntropy(chain Chain) float64 {
	if len(chain) == 0 {
		return 0
	}

	total := 0.0
	for _, next := range chain {
		if len(next) <= 1 {
			continue
		}
		counts := make(map[string]int, len(next))
		for _, w := range next {
			counts[w]++
		}
		for _, c := range counts {
			p := float64(c) / float64(len(next))
			total -= p * math.Log2(p)
		}
	}
	return total / float64(len(chain))
}

// Tokenize splits text into lowercased whitespace-delimited tokens.
// Punctuation stays attached to its word; the cleaner upstream has
// already normalized whitespace, but stray runs are tolerated here.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// finishSentence joins tokens into display text: first letter
// capitalized, a trailing ellipsis when the walk stopped mid-sentence.
func finishSentence(words []string) string {
	if len(words) == 0 {
		return ""
	}

	text := strings.Join(words, " ")
	r := []rune(text)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	text = string(r)

	switch text[len(text)-1] {
	case '.', '!', '?':
	default:
		text += "..."
	}
	return text
}
