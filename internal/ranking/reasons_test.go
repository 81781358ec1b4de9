package ranking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailor/internal/types"
)

func TestProjectMatchReasons(t *testing.T) {
	req := &types.JobRequirement{
		Technologies:  []string{"React", "Node.js", "PostgreSQL"},
		Keywords:      []string{"e-commerce", "web application"},
		IndustryFocus: "retail",
	}
	project := &types.Project{
		Title:        "E-commerce Platform",
		Summary:      "Full-stack e-commerce platform for online retail",
		Technologies: []string{"React", "Node.js", "Docker"},
	}

	reasons := ProjectMatchReasons(req, project)

	joined := strings.ToLower(strings.Join(reasons, " "))
	assert.Contains(t, joined, "react")
	assert.Contains(t, joined, "node.js")
	assert.Contains(t, joined, "e-commerce")
	assert.Contains(t, joined, "retail")
	// Docker is not in the job's technology list.
	assert.NotContains(t, joined, "docker")
}

func TestProjectMatchReasons_NoEvidence(t *testing.T) {
	req := &types.JobRequirement{Technologies: []string{"Haskell"}}
	project := &types.Project{Title: "App", Summary: "mobile app", Technologies: []string{"Swift"}}

	// Empty reasons are valid, not an error.
	assert.Empty(t, ProjectMatchReasons(req, project))
}

func TestProjectMatchReasons_KeywordCap(t *testing.T) {
	req := &types.JobRequirement{
		Keywords: []string{"alpha", "beta", "gamma", "delta"},
	}
	project := &types.Project{Summary: "alpha beta gamma delta all present"}

	reasons := ProjectMatchReasons(req, project)

	assert.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "gamma")
	assert.NotContains(t, reasons[0], "delta")
}

func TestExperienceMatchReasons_TitleAndCurrent(t *testing.T) {
	req := &types.JobRequirement{
		JobTitle:     "Frontend Developer",
		Technologies: []string{"React"},
	}
	exp := &types.Experience{
		Position:     "Senior Frontend Developer",
		Status:       "current",
		Description:  []string{"Led frontend work"},
		Technologies: []string{"React"},
	}

	reasons := ExperienceMatchReasons(req, exp)

	joined := strings.Join(reasons, " | ")
	assert.Contains(t, joined, "Frontend Developer")
	assert.Contains(t, joined, "Current position")
	assert.Contains(t, joined, "React")
}

func TestExperienceMatchReasons_CompletedNoTitleMatch(t *testing.T) {
	req := &types.JobRequirement{JobTitle: "Data Engineer"}
	exp := &types.Experience{Position: "Product Designer", Status: "completed"}

	reasons := ExperienceMatchReasons(req, exp)

	assert.NotContains(t, strings.Join(reasons, " "), "Current position")
	assert.Empty(t, reasons)
}

func TestTitleMatches(t *testing.T) {
	assert.True(t, titleMatches("Frontend Developer", "frontend developer"))
	assert.True(t, titleMatches("Developer", "Senior Developer"))
	assert.True(t, titleMatches("Senior Software Engineer II", "Software Engineer"))
	assert.False(t, titleMatches("", "Engineer"))
	assert.False(t, titleMatches("Designer", "Engineer"))
}

func TestMatchedTechnologies_PreservesCandidateOrder(t *testing.T) {
	matched := matchedTechnologies(
		[]string{"postgresql", "react", "node.js"},
		[]string{"Node.js", "React", "Redis"},
	)

	assert.Equal(t, []string{"Node.js", "React"}, matched)
}
