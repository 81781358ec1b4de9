package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjectAccepts(t *testing.T) {
	doc := []byte(`{"project": {"title": "URL Shortener", "summary": "A Go service."}}`)
	assert.NoError(t, ValidateProject(doc))
}

func TestValidateProjectRequiresTitle(t *testing.T) {
	doc := []byte(`{"project": {"summary": "no title here"}}`)
	err := ValidateProject(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Errors[0].Field, "project")
}

func TestValidateProjectRejectsEmptyTitle(t *testing.T) {
	doc := []byte(`{"project": {"title": ""}}`)
	assert.Error(t, ValidateProject(doc))
}

func TestValidateProjectRequiresWrapper(t *testing.T) {
	doc := []byte(`{"title": "Unwrapped"}`)
	assert.Error(t, ValidateProject(doc))
}

func TestValidateWorkExperienceAccepts(t *testing.T) {
	doc := []byte(`{
		"work_experience": {
			"positions": [
				{
					"id": 1,
					"company": "TechCorp",
					"position": "Software Engineer",
					"duration": {"start": "2022-01", "end": "present"},
					"status": "current",
					"description": ["Built APIs"],
					"technologies": ["Go"],
					"achievements": ["Cut latency 40%"]
				}
			]
		}
	}`)
	assert.NoError(t, ValidateWorkExperience(doc))
}

func TestValidateWorkExperienceRequiresCompany(t *testing.T) {
	doc := []byte(`{"work_experience": {"positions": [{"position": "Engineer"}]}}`)
	err := ValidateWorkExperience(doc)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "company")
}

func TestValidateSkillsAccepts(t *testing.T) {
	doc := []byte(`{
		"skills": {
			"categories": {
				"languages": {
					"skills": [{"name": "Go", "proficiency": "advanced", "context": ["backend"]}]
				}
			}
		}
	}`)
	assert.NoError(t, ValidateSkills(doc))
}

func TestValidateSkillsRequiresSkillName(t *testing.T) {
	doc := []byte(`{"skills": {"categories": {"languages": {"skills": [{"proficiency": "advanced"}]}}}}`)
	assert.Error(t, ValidateSkills(doc))
}

func TestValidateProfileSummaryAccepts(t *testing.T) {
	doc := []byte(`{"profile_summary": {"name": "A. Person", "title": "Engineer"}}`)
	assert.NoError(t, ValidateProfileSummary(doc))
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	err := ValidateProject([]byte(`{not json`))
	assert.Error(t, err)
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "project.title", Message: "is required"},
	}}
	assert.Contains(t, ve.Error(), "1. project.title: is required")
}
