package server

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Bounds for the max_projects request parameter.
const (
	minProjectsParam = 1
	maxProjectsParam = 6

	// relevanceDefaultLimit is the default candidate count for the raw
	// relevance endpoint, which returns more than the tailored package.
	relevanceDefaultLimit = 10

	// summaryTruncateLen caps project summaries in relevance responses.
	summaryTruncateLen = 200
)

// AnalyzeJobRequest is the request body for /api/analyze-job.
type AnalyzeJobRequest struct {
	JobDescription string `json:"job_description"`
}

// TailorRequest is the request body for /api/generate-tailored-content and
// /api/calculate-project-relevance.
type TailorRequest struct {
	JobDescription string `json:"job_description"`
	MaxProjects    int    `json:"max_projects,omitempty"`
}

// handleAnalyzeJob extracts structured requirements from raw posting text.
func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.JobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description is required")
		return
	}

	analysis := s.analyzer.Analyze(r.Context(), req.JobDescription)

	response := map[string]any{
		"analysis": analysis,
		"status":   "success",
	}

	if s.db != nil {
		if id, err := s.db.SaveJobAnalysis(r.Context(), analysis, ""); err != nil {
			log.Printf("[server] failed to persist job analysis: %v", err)
		} else {
			response["analysis_id"] = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleKnowledgeBaseSummary reports what the engine has loaded.
func (s *Server) handleKnowledgeBaseSummary(w http.ResponseWriter, _ *http.Request) {
	type projectView struct {
		Title        string   `json:"title"`
		Technologies []string `json:"technologies"`
	}
	type experienceView struct {
		Company  string `json:"company"`
		Position string `json:"position"`
	}

	projects := make([]projectView, 0, 5)
	for i, p := range s.kb.Projects {
		if i >= 5 {
			break
		}
		projects = append(projects, projectView{Title: p.Title, Technologies: p.Technologies})
	}

	experience := make([]experienceView, 0, 3)
	for i, e := range s.kb.Experience {
		if i >= 3 {
			break
		}
		experience = append(experience, experienceView{Company: e.Company, Position: e.Position})
	}

	categories := make([]string, 0, len(s.kb.Skills))
	for _, c := range s.kb.Skills {
		categories = append(categories, c.Name)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"summary": map[string]any{
			"total_projects":         len(s.kb.Projects),
			"total_experience":       len(s.kb.Experience),
			"total_skill_categories": len(s.kb.Skills),
			"load_timestamp":         s.kb.LoadedAt.Format("2006-01-02T15:04:05Z07:00"),
		},
		"projects":         projects,
		"experience":       experience,
		"skill_categories": categories,
	})
}

// handleGenerateTailoredContent produces the full tailored package.
func (s *Server) handleGenerateTailoredContent(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.JobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description is required")
		return
	}

	analysis := s.analyzer.Analyze(r.Context(), req.JobDescription)
	content := s.assembler.Assemble(r.Context(), &analysis, s.kb, s.clampMaxProjects(req.MaxProjects))

	if s.db != nil {
		if _, err := s.db.SaveTailoringRun(r.Context(), uuid.Nil, content); err != nil {
			log.Printf("[server] failed to persist tailoring run: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"tailored_content": content,
		"status":           "success",
	})
}

// handleCalculateProjectRelevance returns scored projects without assembling
// the full package. Scores are rounded for presentation; long summaries are
// truncated.
func (s *Server) handleCalculateProjectRelevance(w http.ResponseWriter, r *http.Request) {
	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.JobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_description is required")
		return
	}

	limit := req.MaxProjects
	if limit <= 0 {
		limit = relevanceDefaultLimit
	}

	analysis := s.analyzer.Analyze(r.Context(), req.JobDescription)
	scored := s.aggregator.ScoreProjects(r.Context(), &analysis, s.kb.Projects)
	ranked := ranking.Rank(scored, limit, func(p types.Project) []string {
		return ranking.ProjectMatchReasons(&analysis, &p)
	})

	type projectView struct {
		Title        string   `json:"title"`
		Technologies []string `json:"technologies"`
		Summary      string   `json:"summary"`
	}
	type rankedView struct {
		Project        projectView `json:"project"`
		RelevanceScore float64     `json:"relevance_score"`
		MatchReasons   []string    `json:"match_reasons"`
	}

	results := make([]rankedView, 0, len(ranked))
	for _, entry := range ranked {
		results = append(results, rankedView{
			Project: projectView{
				Title:        entry.Candidate.Title,
				Technologies: entry.Candidate.Technologies,
				Summary:      truncateSummary(entry.Candidate.Summary),
			},
			RelevanceScore: round3(entry.Score),
			MatchReasons:   entry.Reasons,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_analysis":            analysis,
		"relevant_projects":       results,
		"total_projects_analyzed": len(s.kb.Projects),
		"status":                  "success",
	})
}

// handleListAnalyses returns recently persisted job analyses.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	analyses, err := s.db.ListRecentAnalyses(r.Context(), 20)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}

// handleGetAnalysis returns one persisted analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	analysis, err := s.db.GetJobAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// clampMaxProjects bounds the caller-supplied project count. Zero means the
// configured default.
func (s *Server) clampMaxProjects(n int) int {
	if n <= 0 {
		return s.maxProjects
	}
	if n < minProjectsParam {
		return minProjectsParam
	}
	if n > maxProjectsParam {
		return maxProjectsParam
	}
	return n
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func truncateSummary(summary string) string {
	if len(summary) > summaryTruncateLen {
		return summary[:summaryTruncateLen] + "..."
	}
	return summary
}
