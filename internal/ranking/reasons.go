package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// maxKeywordReasons caps how many matched keywords a reason line names.
const maxKeywordReasons = 3

// ProjectMatchReasons explains why a project matches the requirement.
func ProjectMatchReasons(req *types.JobRequirement, project *types.Project) []string {
	var reasons []string

	if matched := matchedTechnologies(req.Technologies, project.Technologies); len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Technology match: %s", strings.Join(matched, ", ")))
	}
	if matched := matchedKeywords(req.Keywords, project.SearchText()); len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Relevant keywords: %s", strings.Join(matched, ", ")))
	}
	if industryMentioned(req.IndustryFocus, project.SearchText()) {
		reasons = append(reasons, fmt.Sprintf("Industry relevance: %s", req.IndustryFocus))
	}

	return reasons
}

// ExperienceMatchReasons explains why an experience entry matches the
// requirement. On top of the project signals it checks the position title
// against the target role and flags currently-held positions.
func ExperienceMatchReasons(req *types.JobRequirement, exp *types.Experience) []string {
	var reasons []string

	if matched := matchedTechnologies(req.Technologies, exp.Technologies); len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Technology match: %s", strings.Join(matched, ", ")))
	}
	if matched := matchedKeywords(req.Keywords, exp.SearchText()); len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Relevant keywords: %s", strings.Join(matched, ", ")))
	}
	if industryMentioned(req.IndustryFocus, exp.SearchText()) {
		reasons = append(reasons, fmt.Sprintf("Industry relevance: %s", req.IndustryFocus))
	}
	if titleMatches(req.JobTitle, exp.Position) {
		reasons = append(reasons, fmt.Sprintf("Role aligns with %s", req.JobTitle))
	}
	if exp.IsCurrent() {
		reasons = append(reasons, "Current position")
	}

	return reasons
}

// matchedTechnologies lists candidate technologies whose lower-cased form
// appears in the job's technology list, preserving candidate order.
func matchedTechnologies(jobTechs, candidateTechs []string) []string {
	if len(jobTechs) == 0 {
		return nil
	}

	jobSet := make(map[string]bool, len(jobTechs))
	for _, tech := range jobTechs {
		jobSet[strings.ToLower(strings.TrimSpace(tech))] = true
	}

	var matched []string
	for _, tech := range candidateTechs {
		if jobSet[strings.ToLower(strings.TrimSpace(tech))] {
			matched = append(matched, tech)
		}
	}
	return matched
}

// matchedKeywords returns up to maxKeywordReasons job keywords found as
// substrings in the candidate text, in job keyword order.
func matchedKeywords(keywords []string, text string) []string {
	textLower := strings.ToLower(text)

	var matched []string
	for _, keyword := range keywords {
		if len(matched) >= maxKeywordReasons {
			break
		}
		if keyword == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

func industryMentioned(industry, text string) bool {
	if industry == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(industry))
}

// titleMatches reports whether either title contains the other,
// case-insensitively. "Frontend Developer" matches position "Senior
// Frontend Developer" and vice versa.
func titleMatches(jobTitle, position string) bool {
	if jobTitle == "" || position == "" {
		return false
	}
	a := strings.ToLower(jobTitle)
	b := strings.ToLower(position)
	return strings.Contains(a, b) || strings.Contains(b, a)
}
