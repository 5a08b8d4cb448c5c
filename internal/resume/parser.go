// Package resume turns raw resume text into a structured candidate profile
// using an LLM extraction step validated against a JSON schema.
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/internodyssey/intern-match/internal/llm"
	"github.com/internodyssey/intern-match/internal/schemas"
	"github.com/internodyssey/intern-match/internal/types"
)

// ParsedResume is the structured output of resume extraction.
type ParsedResume struct {
	Name           string      `json:"name"`
	Contact        Contact     `json:"contact"`
	Skills         []string    `json:"skills"`
	Education      []Education `json:"education"`
	WorkExperience []Work      `json:"work_experience"`
	Certifications []string    `json:"certifications,omitempty"`
}

// Contact holds the contact details found in a resume.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Work is one work-experience entry.
type Work struct {
	Company  string `json:"company"`
	Role     string `json:"role,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Parser extracts structured resumes via an LLM client.
type Parser struct {
	client llm.Client
}

// NewParser creates a Parser backed by the given LLM client.
func NewParser(client llm.Client) *Parser {
	return &Parser{client: client}
}

const parsePromptTemplate = `Parse the following resume text and return a JSON object with these fields:
- name (string)
- contact (object with email, phone)
- skills (list of strings)
- education (list of objects with degree, institution, year)
- work_experience (list of objects with company, role, duration)
- certifications (list of strings, may be empty)
Only return JSON, no extra text.

Resume Text:
%s`

// Parse sends the resume text through the LLM, validates the returned
// document against the parsed-resume schema, and decodes it.
func (p *Parser) Parse(ctx context.Context, text string) (*ParsedResume, error) {
	raw, err := p.client.GenerateJSON(ctx, fmt.Sprintf(parsePromptTemplate, text))
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}

	if err := schemas.ValidateJSONString(schemas.ParsedResumeSchema, raw); err != nil {
		return nil, fmt.Errorf("extracted resume does not match schema: %w", err)
	}

	var parsed ParsedResume
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode extracted resume: %w", err)
	}
	return &parsed, nil
}

// ToCandidate converts a parsed resume into a candidate record. The work
// history is flattened into the free-text experience descriptor; eligibility
// flags are left for the caller to set.
func (r *ParsedResume) ToCandidate(id string) types.Candidate {
	var work []string
	for _, w := range r.WorkExperience {
		work = append(work, describeWork(w))
	}

	var education []string
	for _, e := range r.Education {
		parts := []string{e.Degree}
		if e.Institution != "" {
			parts = append(parts, "at "+e.Institution)
		}
		education = append(education, strings.Join(parts, " "))
	}

	return types.Candidate{
		ID:             id,
		Name:           r.Name,
		Skills:         r.Skills,
		Social:         types.SocialGeneral,
		Experience:     strings.Join(work, "; "),
		Education:      strings.Join(education, "; "),
		Certifications: r.Certifications,
	}
}

// describeWork renders one work entry as "Role at Company (Duration)".
func describeWork(w Work) string {
	s := w.Role
	if w.Company != "" {
		if s != "" {
			s += " at "
		}
		s += w.Company
	}
	if w.Duration != "" {
		s += " (" + w.Duration + ")"
	}
	return s
}
