package scoring

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Weight profiles for combining scoring signals per candidate kind.
const (
	projectSemanticWeight = 0.5
	projectTechWeight     = 0.3
	projectKeywordWeight  = 0.2
	// Additive bonus for required skills found among project technologies.
	projectRequiredSkillBoost = 0.1

	experienceSemanticWeight  = 0.4
	experienceTechWeight      = 0.4
	experienceSeniorityWeight = 0.2

	currentPositionScore = 1.0
	pastPositionScore    = 0.7
)

// maxScoringConcurrency caps the per-candidate scoring fan-out.
const maxScoringConcurrency = 8

// Scored pairs a candidate with its relevance score. Scores are ephemeral:
// recomputed per job requirement, never cached across requirements.
type Scored[T any] struct {
	Candidate T
	Score     float64
}

// Aggregator combines the semantic, technology-overlap, and keyword signals
// into a single bounded relevance score per candidate.
type Aggregator struct {
	semantic *SemanticScorer
}

// NewAggregator creates an aggregator around a semantic scorer.
func NewAggregator(semantic *SemanticScorer) *Aggregator {
	return &Aggregator{semantic: semantic}
}

// ScoreProjects scores every project against the requirement. Candidates are
// scored independently and in parallel; results keep the input (load) order.
// A failure on one candidate leaves it at score 0.0 and never aborts the
// batch.
func (a *Aggregator) ScoreProjects(ctx context.Context, req *types.JobRequirement, projects []types.Project) []Scored[types.Project] {
	jobText := req.CombinedText()

	scored := make([]Scored[types.Project], len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringConcurrency)

	for i := range projects {
		scored[i].Candidate = projects[i]
		g.Go(func() error {
			scored[i].Score = a.scoreCandidate(gctx, projects[i].Title, func() float64 {
				return a.scoreProject(gctx, req, jobText, &projects[i])
			})
			return nil
		})
	}
	_ = g.Wait()

	return scored
}

// ScoreExperience scores every experience entry against the requirement,
// keeping input order, with the same per-candidate failure isolation as
// ScoreProjects.
func (a *Aggregator) ScoreExperience(ctx context.Context, req *types.JobRequirement, entries []types.Experience) []Scored[types.Experience] {
	jobText := req.CombinedText()

	scored := make([]Scored[types.Experience], len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringConcurrency)

	for i := range entries {
		scored[i].Candidate = entries[i]
		g.Go(func() error {
			scored[i].Score = a.scoreCandidate(gctx, entries[i].Position, func() float64 {
				return a.scoreExperience(gctx, req, jobText, &entries[i])
			})
			return nil
		})
	}
	_ = g.Wait()

	return scored
}

// scoreCandidate runs one candidate's scoring function, mapping any panic to
// score 0.0 so malformed data cannot take down the batch.
func (a *Aggregator) scoreCandidate(_ context.Context, name string, fn func() float64) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[scoring] candidate %q failed, assigned 0.0: %v", name, r)
			score = 0.0
		}
	}()
	return fn()
}

func (a *Aggregator) scoreProject(ctx context.Context, req *types.JobRequirement, jobText string, project *types.Project) float64 {
	semantic, _ := a.semantic.Similarity(ctx, jobText, project.SearchText())
	techOverlap := TechnologyOverlap(req.Technologies, project.Technologies)
	keywords := KeywordMatch(req.Keywords, project.SearchText())

	score := semantic*projectSemanticWeight +
		techOverlap*projectTechWeight +
		keywords*projectKeywordWeight +
		requiredSkillFraction(req.RequiredSkills, project.Technologies)*projectRequiredSkillBoost

	// Intermediate terms are deliberately not clamped; only the final sum is.
	return clamp01(score)
}

func (a *Aggregator) scoreExperience(ctx context.Context, req *types.JobRequirement, jobText string, exp *types.Experience) float64 {
	semantic, _ := a.semantic.Similarity(ctx, jobText, exp.SearchText())
	techOverlap := TechnologyOverlap(req.Technologies, exp.Technologies)

	seniority := pastPositionScore
	if exp.IsCurrent() {
		seniority = currentPositionScore
	}

	score := semantic*experienceSemanticWeight +
		techOverlap*experienceTechWeight +
		seniority*experienceSeniorityWeight

	return clamp01(score)
}

// requiredSkillFraction returns the fraction of the job's required skills
// present (case-insensitively) in the candidate's technology list.
func requiredSkillFraction(requiredSkills, candidateTechs []string) float64 {
	if len(requiredSkills) == 0 {
		return 0.0
	}

	techSet := lowerSet(candidateTechs)
	present := 0
	for _, skill := range requiredSkills {
		if techSet[normalizeTerm(skill)] {
			present++
		}
	}

	return float64(present) / float64(len(requiredSkills))
}
