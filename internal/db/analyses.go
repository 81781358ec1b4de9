package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-tailor/internal/types"
)

// JobAnalysis is a persisted job requirement extraction.
type JobAnalysis struct {
	ID          uuid.UUID            `json:"id"`
	JobTitle    string               `json:"job_title"`
	CompanyName string               `json:"company_name"`
	SourceURL   string               `json:"source_url,omitempty"`
	Requirement types.JobRequirement `json:"requirement"`
	CreatedAt   time.Time            `json:"created_at"`
}

// TailoringRun is a persisted tailoring result linked to its analysis.
type TailoringRun struct {
	ID                 uuid.UUID `json:"id"`
	AnalysisID         uuid.UUID `json:"analysis_id"`
	ProjectsSelected   int       `json:"projects_selected"`
	ExperienceSelected int       `json:"experience_selected"`
	CreatedAt          time.Time `json:"created_at"`
}

// SaveJobAnalysis stores an extracted job requirement and returns its ID.
func (db *DB) SaveJobAnalysis(ctx context.Context, req types.JobRequirement, sourceURL string) (uuid.UUID, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal requirement: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_analyses (id, job_title, company_name, source_url, requirement)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, req.JobTitle, req.CompanyName, sourceURL, reqJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job analysis: %w", err)
	}
	return id, nil
}

// GetJobAnalysis retrieves a stored analysis by ID. It returns nil without
// error when no row exists.
func (db *DB) GetJobAnalysis(ctx context.Context, id uuid.UUID) (*JobAnalysis, error) {
	var analysis JobAnalysis
	var reqJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, company_name, source_url, requirement, created_at
		 FROM job_analyses WHERE id = $1`,
		id,
	).Scan(&analysis.ID, &analysis.JobTitle, &analysis.CompanyName, &analysis.SourceURL, &reqJSON, &analysis.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job analysis: %w", err)
	}

	if err := json.Unmarshal(reqJSON, &analysis.Requirement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirement: %w", err)
	}
	return &analysis, nil
}

// ListRecentAnalyses retrieves the most recent analyses, newest first.
func (db *DB) ListRecentAnalyses(ctx context.Context, limit int) ([]JobAnalysis, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, company_name, source_url, requirement, created_at
		 FROM job_analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []JobAnalysis
	for rows.Next() {
		var analysis JobAnalysis
		var reqJSON []byte
		if err := rows.Scan(&analysis.ID, &analysis.JobTitle, &analysis.CompanyName,
			&analysis.SourceURL, &reqJSON, &analysis.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if err := json.Unmarshal(reqJSON, &analysis.Requirement); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirement: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// SaveTailoringRun stores a tailoring result. analysisID may be uuid.Nil for
// runs whose analysis was not persisted.
func (db *DB) SaveTailoringRun(ctx context.Context, analysisID uuid.UUID, content *types.TailoredContent) (uuid.UUID, error) {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal tailored content: %w", err)
	}

	var analysisRef any
	if analysisID != uuid.Nil {
		analysisRef = analysisID
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO tailoring_runs (id, analysis_id, projects_selected, experience_selected, content)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, analysisRef, content.Metadata.ProjectsSelected, content.Metadata.ExperienceSelected, contentJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save tailoring run: %w", err)
	}
	return id, nil
}

// ListRunsForAnalysis retrieves tailoring runs for one analysis, newest first.
func (db *DB) ListRunsForAnalysis(ctx context.Context, analysisID uuid.UUID) ([]TailoringRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, analysis_id, projects_selected, experience_selected, created_at
		 FROM tailoring_runs WHERE analysis_id = $1 ORDER BY created_at DESC`,
		analysisID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tailoring runs: %w", err)
	}
	defer rows.Close()

	var runs []TailoringRun
	for rows.Next() {
		var run TailoringRun
		if err := rows.Scan(&run.ID, &run.AnalysisID, &run.ProjectsSelected,
			&run.ExperienceSelected, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tailoring run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
