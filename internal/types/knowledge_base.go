package types

import (
	"strings"
	"time"
)

// Project represents a portfolio project loaded from the knowledge base.
// The technology list is derived once at load time from the summary text
// and never mutated afterward.
type Project struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Summary      string   `json:"summary"`
	RawSummary   string   `json:"raw_summary,omitempty"`
	Technologies []string `json:"technologies"`
}

// SearchText returns the text used for semantic similarity and keyword
// matching against this project.
func (p *Project) SearchText() string {
	if p.Summary != "" {
		return p.Summary
	}
	return p.RawSummary
}

// Duration is a work-experience time window. Dates are kept as strings in
// the source format ("2023-06", "present") since scoring only needs status.
type Duration struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// ExperienceStatusCurrent marks a position the candidate still holds.
const ExperienceStatusCurrent = "current"

// Experience represents one work-experience position from the knowledge base.
type Experience struct {
	ID           int      `json:"id"`
	Company      string   `json:"company" validate:"required,min=1"`
	Position     string   `json:"position" validate:"required,min=1"`
	Location     string   `json:"location,omitempty"`
	Duration     Duration `json:"duration"`
	Type         string   `json:"type,omitempty"`
	Status       string   `json:"status,omitempty"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

// IsCurrent reports whether this position is still held.
func (e *Experience) IsCurrent() bool {
	return strings.EqualFold(e.Status, ExperienceStatusCurrent)
}

// SearchText returns the text used for semantic similarity and keyword
// matching against this experience entry: position plus description and
// achievement lines.
func (e *Experience) SearchText() string {
	parts := make([]string, 0, 1+len(e.Description)+len(e.Achievements))
	if e.Position != "" {
		parts = append(parts, e.Position)
	}
	parts = append(parts, e.Description...)
	parts = append(parts, e.Achievements...)
	return strings.Join(parts, " ")
}

// Skill is a single named skill within a category.
type Skill struct {
	Name            string   `json:"name" validate:"required,min=1"`
	Proficiency     string   `json:"proficiency,omitempty"`
	YearsExperience string   `json:"years_experience,omitempty"`
	Context         []string `json:"context,omitempty"`
}

// SkillCategory groups skills under a category key ("languages",
// "frontend_frameworks", ...). Categories are kept as an ordered slice so
// output is deterministic regardless of JSON map iteration order.
type SkillCategory struct {
	Name   string  `json:"name"`
	Skills []Skill `json:"skills"`
}

// ProfileSummary holds the candidate's profile header information.
type ProfileSummary struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// KnowledgeBase is the immutable snapshot of all candidate data, loaded once
// per process lifetime. Scoring treats it as read-only; only the job
// requirement varies per request.
type KnowledgeBase struct {
	Projects   []Project
	Experience []Experience
	Skills     []SkillCategory
	Profile    ProfileSummary
	LoadedAt   time.Time
}
