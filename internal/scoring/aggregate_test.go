package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func fallbackAggregator() *Aggregator {
	return NewAggregator(NewSemanticScorer(nil))
}

func TestScoreProjects_SpecScenario(t *testing.T) {
	req := &types.JobRequirement{
		Technologies:   []string{"React", "Node.js"},
		RequiredSkills: []string{"React"},
		Keywords:       []string{"frontend"},
	}
	project := types.Project{
		Title:        "Storefront",
		Summary:      "A frontend storefront application",
		Technologies: []string{"React", "Node.js", "PostgreSQL"},
	}

	agg := fallbackAggregator()
	scored := agg.ScoreProjects(context.Background(), req, []types.Project{project})
	require.Len(t, scored, 1)

	// overlap 2/3, keywords 1/1, required boost 1/1; semantic from fallback.
	semantic := WordOverlapSimilarity(req.CombinedText(), project.SearchText())
	expected := semantic*0.5 + (2.0/3.0)*0.3 + 1.0*0.2 + 1.0*0.1
	if expected > 1.0 {
		expected = 1.0
	}
	assert.InDelta(t, expected, scored[0].Score, 0.001)
	assert.GreaterOrEqual(t, scored[0].Score, 0.0)
	assert.LessOrEqual(t, scored[0].Score, 1.0)
}

func TestScoreProjects_EmptyJobTechnologies(t *testing.T) {
	req := &types.JobRequirement{Keywords: []string{"frontend"}}
	project := types.Project{
		Title:        "App",
		Summary:      "frontend app",
		Technologies: []string{"React", "Vue.js", "Svelte"},
	}

	reqWithTechs := &types.JobRequirement{
		Keywords:     []string{"frontend"},
		Technologies: []string{"React"},
	}

	agg := fallbackAggregator()
	without := agg.ScoreProjects(context.Background(), req, []types.Project{project})[0].Score
	with := agg.ScoreProjects(context.Background(), reqWithTechs, []types.Project{project})[0].Score

	// With no job technologies the overlap term must contribute nothing.
	assert.Less(t, without, with+0.5) // sanity: both bounded
	assert.GreaterOrEqual(t, without, 0.0)

	// Direct check of the term itself.
	assert.Equal(t, 0.0, TechnologyOverlap(nil, project.Technologies))
}

func TestScoreProjects_PreservesLoadOrder(t *testing.T) {
	req := &types.JobRequirement{Technologies: []string{"Go"}}
	projects := []types.Project{
		{Title: "first", Technologies: []string{"Go"}},
		{Title: "second", Technologies: []string{"Go"}},
		{Title: "third", Technologies: []string{"Rust"}},
	}

	scored := fallbackAggregator().ScoreProjects(context.Background(), req, projects)

	require.Len(t, scored, 3)
	assert.Equal(t, "first", scored[0].Candidate.Title)
	assert.Equal(t, "second", scored[1].Candidate.Title)
	assert.Equal(t, "third", scored[2].Candidate.Title)
}

func TestScoreProjects_Idempotent(t *testing.T) {
	req := &types.JobRequirement{
		Technologies: []string{"React", "Node.js"},
		Keywords:     []string{"web"},
	}
	projects := []types.Project{
		{Title: "A", Summary: "web app with React", Technologies: []string{"React"}},
	}

	agg := fallbackAggregator()
	first := agg.ScoreProjects(context.Background(), req, projects)[0].Score
	second := agg.ScoreProjects(context.Background(), req, projects)[0].Score

	assert.Equal(t, first, second)
}

func TestScoreProjects_BoundedForAllInputs(t *testing.T) {
	reqs := []*types.JobRequirement{
		{},
		{Technologies: []string{"React"}, RequiredSkills: []string{"React"}, Keywords: []string{"a", "b"}},
		{Technologies: []string{"x", "y", "z"}, RequiredSkills: []string{"x", "y", "z"}},
	}
	projects := []types.Project{
		{},
		{Title: "p", Summary: "x y z a b", Technologies: []string{"x", "y", "z"}},
	}

	agg := fallbackAggregator()
	for _, req := range reqs {
		for _, scored := range agg.ScoreProjects(context.Background(), req, projects) {
			assert.GreaterOrEqual(t, scored.Score, 0.0)
			assert.LessOrEqual(t, scored.Score, 1.0)
		}
	}
}

func TestScoreProjects_BoostClampedAtEnd(t *testing.T) {
	// Perfect everything: weighted sum is 0.5+0.3+0.2+0.1 = 1.1 before the
	// final clamp; the result must be exactly 1.0.
	req := &types.JobRequirement{
		Technologies:   []string{"react"},
		RequiredSkills: []string{"react"},
		Keywords:       []string{"react"},
	}
	project := types.Project{
		Title:        "identical",
		Summary:      req.CombinedText(),
		Technologies: []string{"React"},
	}

	scored := fallbackAggregator().ScoreProjects(context.Background(), req, []types.Project{project})

	assert.Equal(t, 1.0, scored[0].Score)
}

func TestScoreExperience_CurrentBeatsCompleted(t *testing.T) {
	req := &types.JobRequirement{
		Technologies: []string{"React", "Node.js"},
	}
	entries := []types.Experience{
		{
			Position:     "Software Engineer",
			Status:       "current",
			Description:  []string{"Building React applications"},
			Technologies: []string{"React", "Node.js"},
		},
		{
			Position:     "Software Engineer",
			Status:       "completed",
			Description:  []string{"Building React applications"},
			Technologies: []string{"React", "Node.js"},
		},
	}

	scored := fallbackAggregator().ScoreExperience(context.Background(), req, entries)

	require.Len(t, scored, 2)
	assert.Greater(t, scored[0].Score, scored[1].Score)
	// Difference is exactly the seniority term gap.
	assert.InDelta(t, (1.0-0.7)*0.2, scored[0].Score-scored[1].Score, 0.001)
}

func TestScoreExperience_EmptyBatch(t *testing.T) {
	scored := fallbackAggregator().ScoreExperience(context.Background(), &types.JobRequirement{}, nil)
	assert.Empty(t, scored)
}

func TestRequiredSkillFraction(t *testing.T) {
	assert.Equal(t, 0.0, requiredSkillFraction(nil, []string{"React"}))
	assert.Equal(t, 1.0, requiredSkillFraction([]string{"react"}, []string{"React"}))
	assert.InDelta(t, 0.5, requiredSkillFraction([]string{"React", "Go"}, []string{"react"}), 0.001)
	assert.Equal(t, 0.0, requiredSkillFraction([]string{"React"}, nil))
}
