// Package types provides type definitions for structured data used throughout the resume-tailor system.
package types

import "strings"

// JobRequirement is the structured extraction of a job posting: required and
// preferred skills, ATS keywords, technologies, and role metadata.
// It is produced once per request by the job analyzer (LLM or regex fallback)
// and consumed read-only by the scoring engine.
type JobRequirement struct {
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
	Technologies    []string `json:"technologies"`
	IndustryFocus   string   `json:"industry_focus,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	JobTitle        string   `json:"job_title,omitempty"`
	CompanyName     string   `json:"company_name,omitempty"`
}

// IsEmpty reports whether the requirement carries no usable signal.
func (r *JobRequirement) IsEmpty() bool {
	return len(r.RequiredSkills) == 0 &&
		len(r.PreferredSkills) == 0 &&
		len(r.Keywords) == 0 &&
		len(r.Technologies) == 0 &&
		r.IndustryFocus == "" &&
		r.JobTitle == ""
}

// CombinedText concatenates the non-empty requirement fields into a single
// text block used as the job side of semantic similarity. Field order is
// fixed so the text is deterministic for a given requirement. Callers build
// this once per request and reuse it across all candidates.
func (r *JobRequirement) CombinedText() string {
	var parts []string

	if len(r.RequiredSkills) > 0 {
		parts = append(parts, "Required skills: "+strings.Join(r.RequiredSkills, ", "))
	}
	if len(r.PreferredSkills) > 0 {
		parts = append(parts, "Preferred skills: "+strings.Join(r.PreferredSkills, ", "))
	}
	if len(r.Keywords) > 0 {
		parts = append(parts, "Keywords: "+strings.Join(r.Keywords, ", "))
	}
	if len(r.Technologies) > 0 {
		parts = append(parts, "Technologies: "+strings.Join(r.Technologies, ", "))
	}
	if r.IndustryFocus != "" {
		parts = append(parts, "Industry: "+r.IndustryFocus)
	}
	if r.JobTitle != "" {
		parts = append(parts, "Role: "+r.JobTitle)
	}

	return strings.Join(parts, ". ")
}
