package analyze

import (
	"regexp"
	"sort"
)

// TopicUncategorized is assigned when no trigger phrase matches, so the
// drift window never sees an article with zero topics.
const TopicUncategorized = "uncategorized"

// topicTriggers maps each canonical label to the phrases that assign it.
// Matching is case-insensitive on word boundaries.
var topicTriggers = map[string][]string{
	"ai": {
		"artificial intelligence", "machine learning", "deep learning",
		"neural network", "gpt", "llm", "chatgpt", "openai", "anthropic",
		"transformer", "diffusion", "generative ai",
	},
	"tech": {
		"software", "programming", "developer", "startup", "silicon valley",
		"google", "apple", "microsoft", "amazon", "meta", "facebook",
	},
	"crypto": {
		"cryptocurrency", "bitcoin", "ethereum", "blockchain", "defi",
		"nft", "web3", "stablecoin",
	},
	"finance": {
		"stock", "market", "investment", "hedge fund", "wall street",
		"fed", "interest rate", "inflation", "economy", "gdp",
	},
	"politics": {
		"election", "congress", "senate", "president", "democrat",
		"republican", "policy", "legislation", "government",
	},
	"science": {
		"research", "study", "scientist", "physics", "biology",
		"chemistry", "climate", "space", "nasa", "cern",
	},
	"culture": {
		"art", "music", "film", "book", "literature", "philosophy",
		"society", "social",
	},
}

// topicPatterns holds one compiled pattern per label, alternating its
// trigger phrases. Built once at init.
var topicPatterns = compileTopicPatterns()

func compileTopicPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(topicTriggers))
	for label, triggers := range topicTriggers {
		parts := make([]string, len(triggers))
		for i, t := range triggers {
			parts[i] = regexp.QuoteMeta(t)
		}
		expr := `(?i)\b(` + joinAlternation(parts) + `)\b`
		patterns[label] = regexp.MustCompile(expr)
	}
	return patterns
}

func joinAlternation(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "|"
		}
		out += p
	}
	return out
}

// TopicLabels returns every canonical label in sorted order, excluding
// the uncategorized fallback. The drift detector uses this as the
// suggestion universe.
func TopicLabels() []string {
	labels := make([]string, 0, len(topicTriggers))
	for label := range topicTriggers {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Topics tags text with every label whose trigger phrases appear.
// Labels come back sorted. Text matching nothing gets the reserved
// uncategorized label so downstream frequency math stays well-defined.
func Topics(text string) []string {
	var matched []string
	for _, label := range TopicLabels() {
		if topicPatterns[label].MatchString(text) {
			matched = append(matched, label)
		}
	}
	if len(matched) == 0 {
		return []string{TopicUncategorized}
	}
	return matched
}
