package analyze

import (
	"hash/fnv"
	"math/rand"
	"strings"
)

// Config carries the analysis knobs. Zero values are invalid; use
// DefaultConfig and override fields as needed.
type Config struct {
	NGramSize        int           `json:"ngram_size"`        // chain order, default 2
	SummarySentences int           `json:"summary_sentences"` // extractive K, default 2
	LengthThreshold  int           `json:"length_threshold"`  // words below which extraction wins, default 100
	TLDRWords        int           `json:"tldr_words"`        // summary word budget, default 50
	Weights          SignalWeights `json:"signal_weights"`
	Seed             int64         `json:"seed"` // base seed for reproducible generation
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		NGramSize:        2,
		SummarySentences: 2,
		LengthThreshold:  100,
		TLDRWords:        50,
		Weights:          DefaultSignalWeights(),
		Seed:             1,
	}
}

// Record is the analysis of one article. Immutable once computed:
// re-analysis produces a new Record, never mutates an old one.
type Record struct {
	Sentiment   float64  // [-1, 1]
	Signal      float64  // [0, 1]
	Topics      []string // at least one label, possibly "uncategorized"
	TLDR        string
	ReadMinutes int
}

// Analyzer runs the full analysis over cleaned article text.
//
// Analyze derives a fresh deterministic random source per call from the
// configured seed and the text itself, so concurrent calls are
// independent and repeated calls reproduce the same Record.
type Analyzer struct {
	cfg       Config
	sentiment SentimentScorer
}

// NewAnalyzer builds an Analyzer. A nil scorer gets the lexicon default.
func NewAnalyzer(cfg Config, scorer SentimentScorer) *Analyzer {
	if scorer == nil {
		scorer = LexiconSentiment{}
	}
	return &Analyzer{cfg: cfg, sentiment: scorer}
}

// Analyze computes signal, topics, sentiment, TL;DR, and reading time
// for cleaned article text. Safe for concurrent use.
func (a *Analyzer) Analyze(text string) Record {
	rng := rand.New(rand.NewSource(a.cfg.Seed ^ textSeed(text)))

	return Record{
		Sentiment:   a.sentiment.Score(text),
		Signal:      SignalScore(text, a.cfg.Weights),
		Topics:      Topics(text),
		TLDR:        TLDR(text, a.cfg.NGramSize, a.cfg.SummarySentences, a.cfg.LengthThreshold, a.cfg.TLDRWords, rng),
		ReadMinutes: ReadingTime(text),
	}
}

// ReadingTime estimates minutes to read text at 200 words per minute,
// minimum one minute.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + 100) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

// textSeed hashes text into a per-article seed component.
func textSeed(text string) int64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return int64(h.Sum64())
}
