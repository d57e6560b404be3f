// Package config loads and validates the persistent application
// configuration from ~/.skim/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abelbrown/skim/internal/analyze"
	"github.com/abelbrown/skim/internal/track"
)

// Config is the persistent application configuration.
//
// Validation happens once, at load time. Out-of-range values abort
// startup; nothing downstream rechecks them per call.
type Config struct {
	Analysis analyze.Config `json:"analysis"`
	Drift    track.Config   `json:"drift"`
	UI       UIConfig       `json:"ui"`

	// FetchIntervalMinutes is how often feeds are refreshed.
	FetchIntervalMinutes int `json:"fetch_interval_minutes"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	ItemLimit int  `json:"item_limit"`
	ShowRead  bool `json:"show_read"`
}

// Default returns sensible defaults.
func Default() *Config {
	return &Config{
		Analysis: analyze.DefaultConfig(),
		Drift:    track.DefaultConfig(),
		UI: UIConfig{
			ItemLimit: 200,
			ShowRead:  true,
		},
		FetchIntervalMinutes: 15,
	}
}

// DataDir returns the skim data directory, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".skim")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// Path returns the config file location under the data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// Load reads config from disk, merging over defaults, and validates
// eagerly. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Validate checks every tunable for range errors. Returns the first
// problem found.
func (c *Config) Validate() error {
	a := c.Analysis
	if a.NGramSize < 1 {
		return fmt.Errorf("config: ngram_size must be at least 1, got %d", a.NGramSize)
	}
	if a.SummarySentences < 1 {
		return fmt.Errorf("config: summary_sentences must be at least 1, got %d", a.SummarySentences)
	}
	if a.LengthThreshold < 1 {
		return fmt.Errorf("config: length_threshold must be at least 1, got %d", a.LengthThreshold)
	}
	if a.TLDRWords < 1 {
		return fmt.Errorf("config: tldr_words must be at least 1, got %d", a.TLDRWords)
	}
	for name, w := range map[string]float64{
		"richness":      a.Weights.Richness,
		"word_length":   a.Weights.WordLength,
		"high_signal":   a.Weights.HighSignal,
		"filler":        a.Weights.Filler,
		"sentence_fit":  a.Weights.SentenceFit,
		"content_ratio": a.Weights.ContentRatio,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config: signal weight %s must be in [0,1], got %v", name, w)
		}
	}

	d := c.Drift
	if d.WindowSize < 1 {
		return fmt.Errorf("config: drift window_size must be at least 1, got %d", d.WindowSize)
	}
	if d.Threshold <= 0 || d.Threshold > 1 {
		return fmt.Errorf("config: drift threshold must be in (0,1], got %v", d.Threshold)
	}
	if d.MinSamples < 1 {
		return fmt.Errorf("config: drift min_samples must be at least 1, got %d", d.MinSamples)
	}
	if d.MinSamples > d.WindowSize {
		return fmt.Errorf("config: drift min_samples %d exceeds window_size %d", d.MinSamples, d.WindowSize)
	}

	if c.UI.ItemLimit < 1 {
		return fmt.Errorf("config: ui item_limit must be at least 1, got %d", c.UI.ItemLimit)
	}
	if c.FetchIntervalMinutes < 1 {
		return fmt.Errorf("config: fetch_interval_minutes must be at least 1, got %d", c.FetchIntervalMinutes)
	}

	return nil
}
