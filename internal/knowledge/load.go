// Package knowledge loads the candidate knowledge base from its on-disk JSON
// layout: github_projects/*.json, work_experience/work_experience.json,
// skills/skills.json and profile_summary.json under a single root directory.
//
// Loading is tolerant: a corrupt or invalid project file is logged and
// skipped, a missing section is logged and left empty. Only a missing root
// directory is an error.
package knowledge

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	projectsDirName   = "github_projects"
	projectIndexFile  = "00_index"
	experienceRelPath = "work_experience/work_experience.json"
	skillsRelPath     = "skills/skills.json"
	profileFileName   = "profile_summary.json"
)

// Loader reads a knowledge base directory into an immutable snapshot.
type Loader struct {
	root     string
	validate *validator.Validate
}

// NewLoader creates a loader rooted at the given knowledge base directory.
func NewLoader(root string) *Loader {
	return &Loader{
		root:     root,
		validate: validator.New(),
	}
}

// Load reads all knowledge base sections. It fails only when the root
// directory does not exist; individual bad documents are skipped with a log
// line so one corrupt file never takes out the whole knowledge base.
func (l *Loader) Load() (*types.KnowledgeBase, error) {
	info, err := os.Stat(l.root)
	if err != nil {
		return nil, fmt.Errorf("knowledge base directory %s: %w", l.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("knowledge base path %s is not a directory", l.root)
	}

	kb := &types.KnowledgeBase{
		Projects:   l.loadProjects(),
		Experience: l.loadExperience(),
		Skills:     l.loadSkills(),
		Profile:    l.loadProfile(),
		LoadedAt:   time.Now().UTC(),
	}

	log.Printf("[knowledge] loaded %d projects, %d positions, %d skill categories from %s",
		len(kb.Projects), len(kb.Experience), len(kb.Skills), l.root)
	return kb, nil
}

// projectDocument is the on-disk wrapper for a single project file.
type projectDocument struct {
	Project struct {
		Title      string `json:"title"`
		Summary    string `json:"summary"`
		RawSummary string `json:"raw_summary"`
	} `json:"project"`
}

// loadProjects reads github_projects/*.json in filename order, skipping the
// index file. Technologies are derived from the summary text at load time.
func (l *Loader) loadProjects() []types.Project {
	dir := filepath.Join(l.root, projectsDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("[knowledge] projects directory not found: %s", dir)
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, projectIndexFile) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var projects []types.Project
	for _, name := range names {
		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[knowledge] error reading project file %s: %v", name, err)
			continue
		}
		if err := schemas.ValidateProject(content); err != nil {
			log.Printf("[knowledge] skipping invalid project file %s: %v", name, err)
			continue
		}

		var doc projectDocument
		if err := json.Unmarshal(content, &doc); err != nil {
			log.Printf("[knowledge] error parsing project file %s: %v", name, err)
			continue
		}

		project := types.Project{
			Title:        doc.Project.Title,
			Summary:      doc.Project.Summary,
			RawSummary:   doc.Project.RawSummary,
			Technologies: parsing.ExtractTechnologies(doc.Project.Summary),
		}
		if err := l.validate.Struct(&project); err != nil {
			log.Printf("[knowledge] skipping project file %s: %v", name, err)
			continue
		}
		projects = append(projects, project)
	}
	return projects
}

// experienceDocument is the on-disk wrapper for work_experience.json.
type experienceDocument struct {
	WorkExperience struct {
		Positions []types.Experience `json:"positions"`
	} `json:"work_experience"`
}

func (l *Loader) loadExperience() []types.Experience {
	path := filepath.Join(l.root, filepath.FromSlash(experienceRelPath))
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[knowledge] experience file not found: %s", path)
		return nil
	}
	if err := schemas.ValidateWorkExperience(content); err != nil {
		log.Printf("[knowledge] invalid experience file: %v", err)
		return nil
	}

	var doc experienceDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		log.Printf("[knowledge] error parsing experience file: %v", err)
		return nil
	}

	positions := make([]types.Experience, 0, len(doc.WorkExperience.Positions))
	for _, pos := range doc.WorkExperience.Positions {
		if err := l.validate.Struct(&pos); err != nil {
			log.Printf("[knowledge] skipping position %q at %q: %v", pos.Position, pos.Company, err)
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// skillsDocument is the on-disk wrapper for skills.json. Category order in a
// JSON object is not preserved by map decoding, so categories are sorted by
// key to keep output deterministic.
type skillsDocument struct {
	Skills struct {
		Categories map[string]struct {
			Skills []types.Skill `json:"skills"`
		} `json:"categories"`
	} `json:"skills"`
}

func (l *Loader) loadSkills() []types.SkillCategory {
	path := filepath.Join(l.root, filepath.FromSlash(skillsRelPath))
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[knowledge] skills file not found: %s", path)
		return nil
	}
	if err := schemas.ValidateSkills(content); err != nil {
		log.Printf("[knowledge] invalid skills file: %v", err)
		return nil
	}

	var doc skillsDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		log.Printf("[knowledge] error parsing skills file: %v", err)
		return nil
	}

	keys := make([]string, 0, len(doc.Skills.Categories))
	for key := range doc.Skills.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	categories := make([]types.SkillCategory, 0, len(keys))
	for _, key := range keys {
		categories = append(categories, types.SkillCategory{
			Name:   key,
			Skills: doc.Skills.Categories[key].Skills,
		})
	}
	return categories
}

// profileDocument is the on-disk wrapper for profile_summary.json.
type profileDocument struct {
	ProfileSummary types.ProfileSummary `json:"profile_summary"`
}

func (l *Loader) loadProfile() types.ProfileSummary {
	path := filepath.Join(l.root, profileFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[knowledge] profile summary not found: %s", path)
		return types.ProfileSummary{}
	}
	if err := schemas.ValidateProfileSummary(content); err != nil {
		log.Printf("[knowledge] invalid profile summary: %v", err)
		return types.ProfileSummary{}
	}

	var doc profileDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		log.Printf("[knowledge] error parsing profile summary: %v", err)
		return types.ProfileSummary{}
	}
	return doc.ProfileSummary
}
