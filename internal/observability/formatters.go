// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirement outputs a human-readable summary of the extracted job
// requirement.
func (p *Printer) PrintJobRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", req.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", req.JobTitle))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", req.ExperienceLevel))
	if req.IndustryFocus != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", req.IndustryFocus))
	}
	sb.WriteString("\n")

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(req.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.RequiredSkills[i]))
		}
		if len(req.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(req.Technologies) > 0 {
		techs := strings.Join(req.Technologies, ", ")
		sb.WriteString(fmt.Sprintf("Technologies: %s\n", techs))
	}

	p.printBox("EXTRACTED JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredContent outputs the selections of a tailored content package
// with scores and match reasons.
func (p *Printer) PrintTailoredContent(content *types.TailoredContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Projects:   %d of %d selected\n",
		content.Metadata.ProjectsSelected, content.Metadata.TotalProjectsAvailable))
	sb.WriteString(fmt.Sprintf("Experience: %d of %d selected\n\n",
		content.Metadata.ExperienceSelected, content.Metadata.TotalExperienceAvailable))

	for i, sp := range content.SelectedProjects {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, sp.Project.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", sp.RelevanceScore))
		if len(sp.MatchReasons) > 0 {
			reasons := strings.Join(sp.MatchReasons, "; ")
			if len(reasons) > 40 {
				reasons = reasons[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Why: %s\n", reasons))
		}
	}
	sb.WriteString("\n")

	for i, se := range content.SelectedExperience {
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, se.Experience.Position, se.Experience.Company))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", se.RelevanceScore))
	}

	p.printBox("TAILORED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummaryLine prints the generated summary line outside a box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummaryLine(summary string) {
	if summary == "" {
		return
	}
	fmt.Fprintf(p.out, "\nSummary: %s\n", summary)
}
