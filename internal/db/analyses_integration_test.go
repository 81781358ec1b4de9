//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	_, _ = db.pool.Exec(ctx, "DELETE FROM job_analyses WHERE company_name = 'Integration Test Corp'")
	return db
}

func TestIntegration_JobAnalysis_SaveAndGet(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	req := types.JobRequirement{
		RequiredSkills: []string{"Go", "PostgreSQL"},
		Technologies:   []string{"Go"},
		JobTitle:       "Backend Engineer",
		CompanyName:    "Integration Test Corp",
	}

	id, err := db.SaveJobAnalysis(ctx, req, "https://example.com/jobs/1")
	if err != nil {
		t.Fatalf("SaveJobAnalysis failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("analysis ID should not be nil")
	}

	got, err := db.GetJobAnalysis(ctx, id)
	if err != nil {
		t.Fatalf("GetJobAnalysis failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected analysis, got nil")
	}
	if got.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q, want 'Backend Engineer'", got.JobTitle)
	}
	if len(got.Requirement.RequiredSkills) != 2 {
		t.Errorf("RequiredSkills = %v, want 2 entries", got.Requirement.RequiredSkills)
	}
}

func TestIntegration_JobAnalysis_GetMissingReturnsNil(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	got, err := db.GetJobAnalysis(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetJobAnalysis failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing analysis, got %+v", got)
	}
}

func TestIntegration_TailoringRun_SaveAndList(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	req := types.JobRequirement{JobTitle: "Engineer", CompanyName: "Integration Test Corp"}
	analysisID, err := db.SaveJobAnalysis(ctx, req, "")
	if err != nil {
		t.Fatalf("SaveJobAnalysis failed: %v", err)
	}

	content := &types.TailoredContent{
		JobRequirement: req,
		Metadata: types.OptimizationMetadata{
			ProjectsSelected:   3,
			ExperienceSelected: 2,
		},
	}
	runID, err := db.SaveTailoringRun(ctx, analysisID, content)
	if err != nil {
		t.Fatalf("SaveTailoringRun failed: %v", err)
	}
	if runID == uuid.Nil {
		t.Fatal("run ID should not be nil")
	}

	runs, err := db.ListRunsForAnalysis(ctx, analysisID)
	if err != nil {
		t.Fatalf("ListRunsForAnalysis failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].ProjectsSelected != 3 || runs[0].ExperienceSelected != 2 {
		t.Errorf("run counts = (%d, %d), want (3, 2)", runs[0].ProjectsSelected, runs[0].ExperienceSelected)
	}
}
