package tailoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

func testKnowledgeBase() *types.KnowledgeBase {
	return &types.KnowledgeBase{
		Projects: []types.Project{
			{
				Title:        "E-commerce Platform",
				Summary:      "Full-stack e-commerce platform built with React and Node.js",
				Technologies: []string{"React", "Node.js", "Express", "PostgreSQL"},
			},
			{
				Title:        "ML Pipeline",
				Summary:      "Machine learning data pipeline for processing large datasets",
				Technologies: []string{"Python", "TensorFlow", "Kubernetes"},
			},
			{
				Title:        "Fitness Tracker",
				Summary:      "Cross-platform mobile fitness tracking application",
				Technologies: []string{"React Native", "Firebase", "MongoDB"},
			},
			{
				Title:        "DevOps Toolkit",
				Summary:      "Automated CI/CD pipeline and infrastructure management tools",
				Technologies: []string{"Docker", "Kubernetes", "Terraform", "AWS"},
			},
			{
				Title:        "Chat Service",
				Summary:      "Realtime chat with websockets",
				Technologies: []string{"Go", "Redis"},
			},
		},
		Experience: []types.Experience{
			{
				ID:           1,
				Company:      "TechCorp",
				Position:     "Full Stack Developer",
				Status:       "current",
				Description:  []string{"Building web applications with React and Node.js"},
				Technologies: []string{"React", "Node.js", "PostgreSQL"},
			},
			{
				ID:           2,
				Company:      "StartupXYZ",
				Position:     "Software Engineering Intern",
				Status:       "completed",
				Description:  []string{"Developed internal tools in Python"},
				Technologies: []string{"Python", "Django"},
			},
			{
				ID:           3,
				Company:      "AgencyCo",
				Position:     "Web Developer",
				Status:       "completed",
				Description:  []string{"Client websites"},
				Technologies: []string{"JavaScript", "CSS"},
			},
			{
				ID:           4,
				Company:      "DataCo",
				Position:     "Data Analyst",
				Status:       "completed",
				Description:  []string{"Reporting dashboards"},
				Technologies: []string{"SQL"},
			},
		},
		Skills: []types.SkillCategory{
			{Name: "languages", Skills: []types.Skill{
				{Name: "Python"}, {Name: "JavaScript"}, {Name: "Java"},
			}},
			{Name: "frontend_frameworks", Skills: []types.Skill{
				{Name: "React"}, {Name: "React Native"},
			}},
			{Name: "databases", Skills: []types.Skill{
				{Name: "PostgreSQL"}, {Name: "MongoDB"},
			}},
		},
		LoadedAt: time.Now(),
	}
}

func testAssembler() *Assembler {
	return NewAssembler(scoring.NewAggregator(scoring.NewSemanticScorer(nil)))
}

func fullStackRequirement() *types.JobRequirement {
	return &types.JobRequirement{
		RequiredSkills:  []string{"React", "Node.js"},
		PreferredSkills: []string{"Docker", "AWS"},
		Keywords:        []string{"frontend", "backend", "full-stack"},
		Technologies:    []string{"React", "Node.js", "Docker", "AWS"},
		IndustryFocus:   "Technology",
		ExperienceLevel: "Mid-level",
		JobTitle:        "Full Stack Developer",
	}
}

func TestAssemble_Structure(t *testing.T) {
	content := testAssembler().Assemble(context.Background(), fullStackRequirement(), testKnowledgeBase(), 3)

	require.NotNil(t, content)
	assert.LessOrEqual(t, len(content.SelectedProjects), 3)
	assert.NotEmpty(t, content.SelectedProjects)
	assert.LessOrEqual(t, len(content.SelectedExperience), 3)
	assert.NotEmpty(t, content.OptimizedSummary)

	for _, sp := range content.SelectedProjects {
		assert.GreaterOrEqual(t, sp.RelevanceScore, 0.0)
		assert.LessOrEqual(t, sp.RelevanceScore, 1.0)
		assert.NotNil(t, sp.Project.Title)
	}

	meta := content.Metadata
	assert.Equal(t, 5, meta.TotalProjectsAvailable)
	assert.Equal(t, 4, meta.TotalExperienceAvailable)
	assert.Equal(t, len(content.SelectedProjects), meta.ProjectsSelected)
	assert.Equal(t, len(content.SelectedExperience), meta.ExperienceSelected)

	_, err := time.Parse(time.RFC3339, meta.GenerationTimestamp)
	assert.NoError(t, err)
}

func TestAssemble_ProjectsSortedDescending(t *testing.T) {
	content := testAssembler().Assemble(context.Background(), fullStackRequirement(), testKnowledgeBase(), 5)

	for i := 1; i < len(content.SelectedProjects); i++ {
		assert.GreaterOrEqual(t,
			content.SelectedProjects[i-1].RelevanceScore,
			content.SelectedProjects[i].RelevanceScore)
	}

	// The e-commerce project carries the React/Node.js stack and should rank first.
	assert.Equal(t, "E-commerce Platform", content.SelectedProjects[0].Project.Title)
}

func TestAssemble_ExperienceCappedAtThree(t *testing.T) {
	content := testAssembler().Assemble(context.Background(), fullStackRequirement(), testKnowledgeBase(), 6)

	assert.Len(t, content.SelectedExperience, 3)
	// The current full-stack position should rank first.
	assert.Equal(t, "TechCorp", content.SelectedExperience[0].Experience.Company)
}

func TestAssemble_LimitBeyondCandidateCount(t *testing.T) {
	kb := testKnowledgeBase()
	content := testAssembler().Assemble(context.Background(), fullStackRequirement(), kb, 100)

	assert.Len(t, content.SelectedProjects, len(kb.Projects))
}

func TestAssemble_NonPositiveLimitUsesDefault(t *testing.T) {
	content := testAssembler().Assemble(context.Background(), fullStackRequirement(), testKnowledgeBase(), 0)

	assert.Len(t, content.SelectedProjects, DefaultMaxProjects)
}

func TestAssemble_EmptyKnowledgeBase(t *testing.T) {
	kb := &types.KnowledgeBase{}
	content := testAssembler().Assemble(context.Background(), fullStackRequirement(), kb, 4)

	assert.Empty(t, content.SelectedProjects)
	assert.Empty(t, content.SelectedExperience)
	assert.Empty(t, content.RelevantSkills)
	assert.NotEmpty(t, content.OptimizedSummary)
}

func TestRelevantSkills_FiltersAndOmitsEmptyCategories(t *testing.T) {
	req := &types.JobRequirement{
		RequiredSkills: []string{"React", "JavaScript"},
		Technologies:   []string{"React", "JavaScript", "Node.js"},
	}

	relevant := RelevantSkills(req, testKnowledgeBase().Skills)

	assert.Contains(t, relevant["frontend_frameworks"], "React")
	assert.Contains(t, relevant["languages"], "JavaScript")
	// databases has no matching skills and must be omitted entirely.
	assert.NotContains(t, relevant, "databases")
}

func TestRelevantSkills_BidirectionalSubstring(t *testing.T) {
	categories := []types.SkillCategory{
		{Name: "languages", Skills: []types.Skill{{Name: "JavaScript"}}},
	}

	// Job term "Java" matches skill "JavaScript": known fuzzy-match quirk.
	relevant := RelevantSkills(&types.JobRequirement{Technologies: []string{"Java"}}, categories)
	assert.Contains(t, relevant["languages"], "JavaScript")

	// And the reverse direction: skill "Go" matches job term "Golang"? The
	// skill name must be contained in the term.
	categories = []types.SkillCategory{
		{Name: "languages", Skills: []types.Skill{{Name: "Go"}}},
	}
	relevant = RelevantSkills(&types.JobRequirement{Technologies: []string{"Golang"}}, categories)
	assert.Contains(t, relevant["languages"], "Go")
}

func TestRelevantSkills_NoTerms(t *testing.T) {
	relevant := RelevantSkills(&types.JobRequirement{}, testKnowledgeBase().Skills)
	assert.Empty(t, relevant)
}

func TestOptimizedSummary_FullRequirement(t *testing.T) {
	summary := OptimizedSummary(fullStackRequirement())

	assert.Equal(t,
		"Mid-level Full Stack Developer with expertise in React, Node.js, Docker, AWS. "+
			"Proven track record of delivering high-quality software solutions and collaborating effectively in agile development environments.",
		summary)
}

func TestOptimizedSummary_Defaults(t *testing.T) {
	summary := OptimizedSummary(&types.JobRequirement{})

	assert.Equal(t,
		"experienced software professional with expertise in modern technologies. "+
			"Proven track record of delivering high-quality software solutions and collaborating effectively in agile development environments.",
		summary)
}

func TestOptimizedSummary_TechLimit(t *testing.T) {
	req := &types.JobRequirement{
		Technologies: []string{"A", "B", "C", "D", "E", "F", "G"},
	}

	summary := OptimizedSummary(req)

	assert.Contains(t, summary, "A, B, C, D, E.")
	assert.NotContains(t, summary, "F")
}

func TestAssemble_TieKeepsLoadOrder(t *testing.T) {
	kb := &types.KnowledgeBase{
		Projects: []types.Project{
			{Title: "first", Summary: "identical text", Technologies: []string{"Go"}},
			{Title: "second", Summary: "identical text", Technologies: []string{"Go"}},
		},
	}
	req := &types.JobRequirement{Technologies: []string{"Go"}}

	content := testAssembler().Assemble(context.Background(), req, kb, 2)

	require.Len(t, content.SelectedProjects, 2)
	assert.Equal(t, "first", content.SelectedProjects[0].Project.Title)
	assert.Equal(t, "second", content.SelectedProjects[1].Project.Title)
}
