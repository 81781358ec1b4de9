package parsing

import "strings"

// skillAliases maps common spelling variants to canonical names.
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeSkillName maps a skill or technology name to its canonical form.
// Names with no known alias keep their casing, except all-lowercase single
// words, which get their first letter capitalized.
func NormalizeSkillName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}

	if canonical, ok := skillAliases[strings.ToLower(normalized)]; ok {
		return canonical
	}

	// Leave multi-word and mixed-case names alone; all-caps names are
	// usually acronyms (AWS, SQL) and must not be downcased.
	if normalized == strings.ToLower(normalized) && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkillTerms normalizes every term in a list and drops duplicates
// and empty entries, preserving first-occurrence order.
func NormalizeSkillTerms(terms []string) []string {
	if len(terms) == 0 {
		return terms
	}

	result := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))

	for _, term := range terms {
		normalized := NormalizeSkillName(term)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}
