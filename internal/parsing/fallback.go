package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Caps for the fallback extractor output.
const (
	maxFallbackSkills   = 8
	maxExtraKeywords    = 10
	maxFallbackKeywords = 15
)

// commonSkills is the vocabulary the fallback extractor scans a raw job
// posting for when the LLM analyzer is unavailable.
var commonSkills = []string{
	"Python", "Java", "JavaScript", "React", "Node.js", "AWS", "Docker",
	"PostgreSQL", "MySQL", "MongoDB", "Git", "Linux", "Kubernetes",
	"Spring Boot", "Django", "Flask", "Express", "Vue.js", "Angular",
	"Go", "TypeScript", "Redis", "GraphQL", "Terraform",
}

var capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

// FallbackJobRequirement extracts a JobRequirement from raw posting text
// using pattern matching only. It is the degraded path for the LLM analyzer
// and never fails: for any input it returns a well-formed requirement with
// generic defaults.
func FallbackJobRequirement(jobText string) types.JobRequirement {
	var skills []string
	seen := make(map[string]bool)

	for _, skill := range commonSkills {
		pattern := regexp.MustCompile(`(?i)(^|[^A-Za-z0-9])` + regexp.QuoteMeta(skill) + `($|[^A-Za-z0-9])`)
		if pattern.MatchString(jobText) {
			skills = append(skills, skill)
			seen[strings.ToLower(skill)] = true
		}
	}

	// Keywords: matched skills plus capitalized words from the posting.
	keywords := make([]string, len(skills))
	copy(keywords, skills)

	extra := 0
	for _, word := range capitalizedWord.FindAllString(jobText, -1) {
		if extra >= maxExtraKeywords || len(keywords) >= maxFallbackKeywords {
			break
		}
		key := strings.ToLower(word)
		if seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, word)
		extra++
	}

	required := skills
	if len(required) > maxFallbackSkills {
		required = required[:maxFallbackSkills]
	}

	return types.JobRequirement{
		RequiredSkills:  required,
		PreferredSkills: []string{},
		Keywords:        keywords,
		Technologies:    skills,
		IndustryFocus:   "Technology",
		ExperienceLevel: "Mid-level",
		JobTitle:        "Software Engineer",
	}
}
