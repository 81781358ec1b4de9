package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/resume-tailor/internal/embedding"
)

// SemanticScorer computes text similarity from dense embeddings, degrading
// to word-overlap similarity whenever the embedding backend is unavailable
// or fails. Degradation is silent per call; the backend itself logs its
// initialization failure once.
type SemanticScorer struct {
	backend embedding.Backend
}

// NewSemanticScorer creates a scorer around an embedding backend. A nil
// backend routes every call to the word-overlap path.
func NewSemanticScorer(backend embedding.Backend) *SemanticScorer {
	return &SemanticScorer{backend: backend}
}

// Similarity returns a similarity score in [0,1] for the two texts and
// whether the embedding path produced it (false means the word-overlap
// fallback was used). It never returns an error: any backend failure
// degrades to the fallback value.
func (s *SemanticScorer) Similarity(ctx context.Context, text1, text2 string) (float64, bool) {
	if s == nil || s.backend == nil {
		return WordOverlapSimilarity(text1, text2), false
	}

	vectors, err := s.backend.Embed(ctx, []string{text1, text2})
	if err != nil || len(vectors) != 2 {
		return WordOverlapSimilarity(text1, text2), false
	}

	// Cosine can be negative; floor at zero before the upper clamp.
	return clamp01(cosineSimilarity(vectors[0], vectors[1])), true
}

// WordOverlapSimilarity is the degraded similarity path: Jaccard similarity
// of the lower-cased whitespace-token sets of both texts.
func WordOverlapSimilarity(text1, text2 string) float64 {
	set1 := tokenSet(text1)
	set2 := tokenSet(text2)

	intersection := 0
	for word := range set1 {
		if set2[word] {
			intersection++
		}
	}

	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = true
	}
	return set
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
