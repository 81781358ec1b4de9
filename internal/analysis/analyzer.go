// Package analysis extracts structured job requirements from raw job
// posting text. The primary path is LLM-based extraction; any failure falls
// back to regex extraction so callers always receive a usable requirement.
package analysis

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Analyzer turns raw job-posting text into a JobRequirement.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer. A nil client routes every call straight
// to the regex fallback.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze extracts a JobRequirement from posting text. It never returns an
// error: an LLM failure or unparseable response degrades to the regex
// fallback extractor, so downstream scoring always gets a well-formed
// requirement.
func (a *Analyzer) Analyze(ctx context.Context, jobText string) types.JobRequirement {
	if a == nil || a.client == nil {
		return parsing.FallbackJobRequirement(jobText)
	}

	response, err := a.client.GenerateJSON(ctx, buildAnalysisPrompt(jobText), llm.TierLite)
	if err != nil {
		log.Printf("[analysis] LLM job analysis failed, using fallback extraction: %v", err)
		return parsing.FallbackJobRequirement(jobText)
	}

	var req types.JobRequirement
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &req); err != nil {
		log.Printf("[analysis] failed to parse LLM job analysis JSON, using fallback extraction: %v", err)
		return parsing.FallbackJobRequirement(jobText)
	}

	normalize(&req)
	return req
}

// buildAnalysisPrompt constructs the extraction prompt for a job posting.
func buildAnalysisPrompt(jobText string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert at analyzing job descriptions for resume optimization.\n")
	sb.WriteString("Analyze the following job description and extract key information.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{
  "required_skills": ["string"],  // required technical skills
  "preferred_skills": ["string"], // preferred or nice-to-have skills
  "keywords": ["string"],         // important keywords for ATS optimization
  "technologies": ["string"],     // specific technologies mentioned
  "industry_focus": "string",     // industry or domain focus
  "experience_level": "string",   // required experience level
  "job_title": "string",          // job title
  "company_name": "string"        // company name if mentioned
}`)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")
	sb.WriteString("Job description:\n\"\"\"\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// normalize canonicalizes skill and technology names and ensures list
// fields are never nil so JSON responses serialize as arrays and scoring
// sees empty-but-valid inputs.
func normalize(req *types.JobRequirement) {
	req.RequiredSkills = parsing.NormalizeSkillTerms(req.RequiredSkills)
	req.PreferredSkills = parsing.NormalizeSkillTerms(req.PreferredSkills)
	req.Technologies = parsing.NormalizeSkillTerms(req.Technologies)

	if req.RequiredSkills == nil {
		req.RequiredSkills = []string{}
	}
	if req.PreferredSkills == nil {
		req.PreferredSkills = []string{}
	}
	if req.Keywords == nil {
		req.Keywords = []string{}
	}
	if req.Technologies == nil {
		req.Technologies = []string{}
	}
}
