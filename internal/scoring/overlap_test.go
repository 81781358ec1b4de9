package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechnologyOverlap_PerfectMatch(t *testing.T) {
	techs := []string{"React", "Node.js", "PostgreSQL"}
	assert.Equal(t, 1.0, TechnologyOverlap(techs, techs))
}

func TestTechnologyOverlap_PartialMatch(t *testing.T) {
	// 1 common (React) out of 5 unique technologies.
	overlap := TechnologyOverlap(
		[]string{"React", "Node.js", "MongoDB"},
		[]string{"React", "PostgreSQL", "Docker"},
	)
	assert.InDelta(t, 1.0/5.0, overlap, 0.01)
}

func TestTechnologyOverlap_NoMatch(t *testing.T) {
	overlap := TechnologyOverlap([]string{"React", "Vue.js"}, []string{"Python", "Django"})
	assert.Equal(t, 0.0, overlap)
}

func TestTechnologyOverlap_CaseInsensitive(t *testing.T) {
	overlap := TechnologyOverlap([]string{"REACT", "node.js"}, []string{"react", "Node.JS"})
	assert.Equal(t, 1.0, overlap)
}

func TestTechnologyOverlap_EmptyJobTechs(t *testing.T) {
	// Absence of requirement information is absence of match evidence.
	assert.Equal(t, 0.0, TechnologyOverlap(nil, []string{"React"}))
	assert.Equal(t, 0.0, TechnologyOverlap([]string{}, []string{"React"}))
}

func TestTechnologyOverlap_BothEmpty(t *testing.T) {
	assert.Equal(t, 0.0, TechnologyOverlap(nil, nil))
}

func TestTechnologyOverlap_Symmetric(t *testing.T) {
	a := []string{"React", "Node.js", "Docker"}
	b := []string{"React", "PostgreSQL"}
	assert.Equal(t, TechnologyOverlap(a, b), TechnologyOverlap(b, a))
}

func TestTechnologyOverlap_SpecScenario(t *testing.T) {
	// Job: React, Node.js vs candidate: React, Node.js, PostgreSQL -> 2/3.
	overlap := TechnologyOverlap(
		[]string{"React", "Node.js"},
		[]string{"React", "Node.js", "PostgreSQL"},
	)
	assert.InDelta(t, 2.0/3.0, overlap, 0.001)
}

func TestKeywordMatch_AllFound(t *testing.T) {
	score := KeywordMatch([]string{"frontend"}, "A frontend-heavy web application")
	assert.Equal(t, 1.0, score)
}

func TestKeywordMatch_Partial(t *testing.T) {
	score := KeywordMatch(
		[]string{"e-commerce", "payments", "mobile"},
		"E-commerce platform with payments integration",
	)
	assert.InDelta(t, 2.0/3.0, score, 0.001)
}

func TestKeywordMatch_EmptyKeywords(t *testing.T) {
	assert.Equal(t, 0.0, KeywordMatch(nil, "some text"))
}

func TestKeywordMatch_SubstringInsideWord(t *testing.T) {
	// Matching is substring-based, not tokenized.
	assert.Equal(t, 1.0, KeywordMatch([]string{"java"}, "written in JavaScript"))
}

func TestKeywordMatch_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, KeywordMatch([]string{"REST"}, "Exposes a restful API"))
}
