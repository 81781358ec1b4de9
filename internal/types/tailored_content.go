package types

// SelectedProject is a project chosen for the tailored package, with its
// relevance score and human-readable match reasons. Reasons are
// presentation-only and never feed back into scoring.
type SelectedProject struct {
	Project        Project  `json:"project"`
	RelevanceScore float64  `json:"relevance_score"`
	MatchReasons   []string `json:"match_reasons"`
}

// SelectedExperience is an experience entry chosen for the tailored package.
type SelectedExperience struct {
	Experience     Experience `json:"experience"`
	RelevanceScore float64    `json:"relevance_score"`
	MatchReasons   []string   `json:"match_reasons"`
}

// OptimizationMetadata records how the package was produced.
type OptimizationMetadata struct {
	TotalProjectsAvailable   int    `json:"total_projects_available"`
	TotalExperienceAvailable int    `json:"total_experience_available"`
	ProjectsSelected         int    `json:"projects_selected"`
	ExperienceSelected       int    `json:"experience_selected"`
	GenerationTimestamp      string `json:"generation_timestamp"`
}

// TailoredContent is the final content package: selected projects and
// experience ranked by relevance, skills filtered to the job's terms, and a
// generated summary line.
type TailoredContent struct {
	JobRequirement     JobRequirement       `json:"job_analysis"`
	SelectedProjects   []SelectedProject    `json:"selected_projects"`
	SelectedExperience []SelectedExperience `json:"selected_experiences"`
	RelevantSkills     map[string][]string  `json:"relevant_skills"`
	OptimizedSummary   string               `json:"optimized_summary"`
	Metadata           OptimizationMetadata `json:"optimization_metadata"`
}
