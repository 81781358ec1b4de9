// Package scoring implements the multi-signal relevance scorer that ranks
// knowledge-base entries against a job requirement.
package scoring

import "strings"

// TechnologyOverlap computes the Jaccard similarity between two technology
// lists, case-insensitively. An empty job list means there is no requirement
// signal, so the result is 0.0 rather than a neutral value.
func TechnologyOverlap(jobTechs, candidateTechs []string) float64 {
	if len(jobTechs) == 0 {
		return 0.0
	}

	jobSet := lowerSet(jobTechs)
	candidateSet := lowerSet(candidateTechs)

	intersection := 0
	for tech := range jobSet {
		if candidateSet[tech] {
			intersection++
		}
	}

	union := len(jobSet) + len(candidateSet) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// KeywordMatch returns the fraction of keywords found in the text. Matching
// is case-insensitive substring containment against the full text, not
// tokenized: a keyword inside another word still counts.
func KeywordMatch(keywords []string, text string) float64 {
	if len(keywords) == 0 {
		return 0.0
	}

	textLower := strings.ToLower(text)
	matched := 0
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			matched++
		}
	}

	return float64(matched) / float64(len(keywords))
}

func normalizeTerm(term string) string {
	return strings.TrimSpace(strings.ToLower(term))
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item = normalizeTerm(item); item != "" {
			set[item] = true
		}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
