// Package ranking orders scored candidates and produces human-readable match
// explanations.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-tailor/internal/scoring"
)

// ExperienceLimit is the fixed number of experience entries selected for a
// tailored package regardless of caller input.
const ExperienceLimit = 3

// Ranked is a scored candidate plus its ordered match reasons. An empty
// reason list is valid: it means no match evidence, not an error.
type Ranked[T any] struct {
	Candidate T
	Score     float64
	Reasons   []string
}

// Rank sorts scored candidates by score descending and truncates to limit.
// The sort is stable, so candidates with equal scores keep their original
// (knowledge-base load) order. The explain function generates presentation
// reasons per candidate; it never influences ordering.
func Rank[T any](scored []scoring.Scored[T], limit int, explain func(T) []string) []Ranked[T] {
	ordered := make([]scoring.Scored[T], len(scored))
	copy(ordered, scored)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	if limit >= 0 && limit < len(ordered) {
		ordered = ordered[:limit]
	}

	ranked := make([]Ranked[T], len(ordered))
	for i, s := range ordered {
		var reasons []string
		if explain != nil {
			reasons = explain(s.Candidate)
		}
		ranked[i] = Ranked[T]{Candidate: s.Candidate, Score: s.Score, Reasons: reasons}
	}

	return ranked
}
