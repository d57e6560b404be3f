package fetch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sourcesFile is the on-disk shape of sources.yaml.
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads feed sources from a YAML file. A missing file is
// not an error: the defaults are returned so first run works.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSources(), nil
		}
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	for i, src := range f.Sources {
		if src.Name == "" || src.URL == "" {
			return nil, fmt.Errorf("source %d: name and url are required", i)
		}
	}

	if len(f.Sources) == 0 {
		return DefaultSources(), nil
	}
	return f.Sources, nil
}

// SaveSources writes sources to a YAML file, creating it if needed.
func SaveSources(path string, sources []Source) error {
	data, err := yaml.Marshal(sourcesFile{Sources: sources})
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultSources returns the starter feed list.
func DefaultSources() []Source {
	return []Source{
		{Name: "Hacker News", URL: "https://news.ycombinator.com/rss"},
		{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index"},
		{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml"},
		{Name: "Quanta Magazine", URL: "https://www.quantamagazine.org/feed/"},
		{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
	}
}
