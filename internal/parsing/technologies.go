// Package parsing provides text-pattern extraction utilities for knowledge
// base documents and raw job postings.
package parsing

import (
	"regexp"
	"strings"
)

// techLinePatterns match lines that enumerate technologies in project
// summaries ("Technologies Used: React, Node.js", "Built with Go and gRPC").
var techLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Technologies Used:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Technologies:\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Built with\s+([^\n.]+)`),
	regexp.MustCompile(`(?i)Database:\s*([^\n.]+)`),
}

// techDelimiters splits enumeration matches into individual entries.
var techDelimiters = regexp.MustCompile(`[,;&]`)

// knownTechnologies is the vocabulary scanned for word-boundary mentions in
// free text. Entries are case-preserved; matching is case-insensitive.
var knownTechnologies = []string{
	"React", "Node.js", "Python", "Java", "JavaScript", "TypeScript",
	"PostgreSQL", "MySQL", "MongoDB", "SQLite", "Docker", "AWS", "Next.js",
	"Spring Boot", "Django", "Flask", "Express", "Vue.js", "Angular",
	"Redis", "Kubernetes", "Git", "GitHub", "REST", "GraphQL",
	"Socket.io", "JWT", "OAuth", "TensorFlow", "PyTorch", "Scikit-learn",
	"HTML", "CSS", "SASS", "Tailwind", "Bootstrap", "Material-UI",
	"C++", "C#", "Go", "Rust", "Ruby", "PHP", "Swift", "Kotlin",
	"Laravel", "Symfony", "Rails", "ASP.NET", "Nginx", "Apache",
	"Linux", "Ubuntu", "CentOS", "Prisma",
	"Sequelize", "Mongoose", "Hibernate", "JPA", "SQLAlchemy",
}

var knownTechPatterns = buildKnownTechPatterns()

func buildKnownTechPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(knownTechnologies))
	for _, tech := range knownTechnologies {
		// \b does not sit between symbols like "+" and whitespace, so wrap
		// escaped names with explicit boundaries where they apply.
		patterns[tech] = regexp.MustCompile(`(?i)(^|[^A-Za-z0-9])` + regexp.QuoteMeta(tech) + `($|[^A-Za-z0-9])`)
	}
	return patterns
}

// ExtractTechnologies pulls a deduplicated technology list out of a project
// summary. Enumeration lines are tried first, then the known-technology
// vocabulary is scanned. Names keep the casing they were extracted with and
// first-seen order is preserved.
func ExtractTechnologies(summary string) []string {
	if strings.TrimSpace(summary) == "" {
		return nil
	}

	var techs []string
	seen := make(map[string]bool)

	add := func(tech string) {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			return
		}
		key := strings.ToLower(tech)
		if seen[key] {
			return
		}
		seen[key] = true
		techs = append(techs, tech)
	}

	for _, pattern := range techLinePatterns {
		for _, match := range pattern.FindAllStringSubmatch(summary, -1) {
			for _, entry := range techDelimiters.Split(match[1], -1) {
				add(entry)
			}
		}
	}

	for _, tech := range knownTechnologies {
		if knownTechPatterns[tech].MatchString(summary) {
			add(tech)
		}
	}

	return techs
}
