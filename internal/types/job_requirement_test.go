package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinedText_AllFields(t *testing.T) {
	req := JobRequirement{
		RequiredSkills:  []string{"React", "Node.js"},
		PreferredSkills: []string{"Docker"},
		Keywords:        []string{"full-stack", "e-commerce"},
		Technologies:    []string{"React", "PostgreSQL"},
		IndustryFocus:   "Technology",
		JobTitle:        "Full Stack Developer",
	}

	text := req.CombinedText()

	expected := "Required skills: React, Node.js. " +
		"Preferred skills: Docker. " +
		"Keywords: full-stack, e-commerce. " +
		"Technologies: React, PostgreSQL. " +
		"Industry: Technology. " +
		"Role: Full Stack Developer"
	assert.Equal(t, expected, text)
}

func TestCombinedText_SkipsEmptyFields(t *testing.T) {
	req := JobRequirement{
		RequiredSkills: []string{"Go"},
		JobTitle:       "Backend Engineer",
	}

	text := req.CombinedText()

	assert.Equal(t, "Required skills: Go. Role: Backend Engineer", text)
}

func TestCombinedText_Empty(t *testing.T) {
	req := JobRequirement{}
	assert.Equal(t, "", req.CombinedText())
	assert.True(t, req.IsEmpty())
}

func TestCombinedText_Deterministic(t *testing.T) {
	req := JobRequirement{
		RequiredSkills: []string{"Python"},
		Keywords:       []string{"backend"},
	}

	assert.Equal(t, req.CombinedText(), req.CombinedText())
}
