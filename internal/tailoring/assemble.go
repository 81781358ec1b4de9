// Package tailoring assembles the final tailored content package from ranked
// knowledge-base entries.
package tailoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/types"
)

// DefaultMaxProjects is used when the caller does not specify a project limit.
const DefaultMaxProjects = 4

// summaryTechLimit caps how many technologies the generated summary names.
const summaryTechLimit = 5

// Assembler orchestrates scoring and ranking over the whole knowledge base.
type Assembler struct {
	agg *scoring.Aggregator
}

// NewAssembler creates an assembler around a relevance aggregator.
func NewAssembler(agg *scoring.Aggregator) *Assembler {
	return &Assembler{agg: agg}
}

// Assemble produces the tailored content package for one job requirement:
// the top maxProjects projects, the top three experience entries, skills
// filtered to the job's terms, a generated summary, and metadata. The caller
// is responsible for bounding maxProjects; a non-positive value falls back
// to the default.
func (a *Assembler) Assemble(ctx context.Context, req *types.JobRequirement, kb *types.KnowledgeBase, maxProjects int) *types.TailoredContent {
	if maxProjects <= 0 {
		maxProjects = DefaultMaxProjects
	}

	scoredProjects := a.agg.ScoreProjects(ctx, req, kb.Projects)
	rankedProjects := ranking.Rank(scoredProjects, maxProjects, func(p types.Project) []string {
		return ranking.ProjectMatchReasons(req, &p)
	})

	scoredExperience := a.agg.ScoreExperience(ctx, req, kb.Experience)
	rankedExperience := ranking.Rank(scoredExperience, ranking.ExperienceLimit, func(e types.Experience) []string {
		return ranking.ExperienceMatchReasons(req, &e)
	})

	selectedProjects := make([]types.SelectedProject, len(rankedProjects))
	for i, r := range rankedProjects {
		selectedProjects[i] = types.SelectedProject{
			Project:        r.Candidate,
			RelevanceScore: r.Score,
			MatchReasons:   r.Reasons,
		}
	}

	selectedExperience := make([]types.SelectedExperience, len(rankedExperience))
	for i, r := range rankedExperience {
		selectedExperience[i] = types.SelectedExperience{
			Experience:     r.Candidate,
			RelevanceScore: r.Score,
			MatchReasons:   r.Reasons,
		}
	}

	return &types.TailoredContent{
		JobRequirement:     *req,
		SelectedProjects:   selectedProjects,
		SelectedExperience: selectedExperience,
		RelevantSkills:     RelevantSkills(req, kb.Skills),
		OptimizedSummary:   OptimizedSummary(req),
		Metadata: types.OptimizationMetadata{
			TotalProjectsAvailable:   len(kb.Projects),
			TotalExperienceAvailable: len(kb.Experience),
			ProjectsSelected:         len(selectedProjects),
			ExperienceSelected:       len(selectedExperience),
			GenerationTimestamp:      time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// RelevantSkills filters skill categories down to skills matching the job's
// technology and required-skill terms. Matching is bidirectional substring
// containment on lower-cased names, so a job term "Java" also matches a
// candidate skill "JavaScript"; this fuzziness is intentional and matches
// the keyword scorer's behavior. Categories with no matching skills are
// omitted entirely.
func RelevantSkills(req *types.JobRequirement, categories []types.SkillCategory) map[string][]string {
	terms := make([]string, 0, len(req.Technologies)+len(req.RequiredSkills))
	for _, term := range append(append([]string{}, req.Technologies...), req.RequiredSkills...) {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			terms = append(terms, term)
		}
	}

	relevant := make(map[string][]string)
	if len(terms) == 0 {
		return relevant
	}

	for _, category := range categories {
		var names []string
		for _, skill := range category.Skills {
			if skillMatchesAnyTerm(skill.Name, terms) {
				names = append(names, skill.Name)
			}
		}
		if len(names) > 0 {
			relevant[category.Name] = names
		}
	}

	return relevant
}

func skillMatchesAnyTerm(name string, terms []string) bool {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	if nameLower == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(nameLower, term) || strings.Contains(term, nameLower) {
			return true
		}
	}
	return false
}

// OptimizedSummary generates the deterministic profile summary line for the
// requirement.
func OptimizedSummary(req *types.JobRequirement) string {
	level := req.ExperienceLevel
	if level == "" {
		level = "experienced"
	}

	title := req.JobTitle
	if title == "" {
		title = "software professional"
	}

	techPhrase := "modern technologies"
	if len(req.Technologies) > 0 {
		techs := req.Technologies
		if len(techs) > summaryTechLimit {
			techs = techs[:summaryTechLimit]
		}
		techPhrase = strings.Join(techs, ", ")
	}

	return fmt.Sprintf(
		"%s %s with expertise in %s. Proven track record of delivering high-quality software solutions and collaborating effectively in agile development environments.",
		level, title, techPhrase,
	)
}
