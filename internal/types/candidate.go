package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SocialGeneral is the default social category when a candidate record omits one.
const SocialGeneral = "General"

// Candidate represents a profile considered for a posting.
type Candidate struct {
	ID                string   `json:"id" validate:"required"`
	Name              string   `json:"name" validate:"required"`
	Skills            []string `json:"skills"`
	Location          string   `json:"location"`
	Rural             bool     `json:"rural"`
	Social            string   `json:"social"`
	Experience        string   `json:"experience"`
	PastParticipation bool     `json:"past_participation"`
	HasExperience     bool     `json:"has_experience"`

	// Optional richer profile fields, used only for text rendering when present.
	Education      string   `json:"education,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	Objective      string   `json:"objective,omitempty"`
}

// Validate validates the Candidate using the validator.
func (c *Candidate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// SocialCategory returns the candidate's social category, defaulting to General.
func (c *Candidate) SocialCategory() string {
	if c.Social == "" {
		return SocialGeneral
	}
	return c.Social
}

// ProfileText renders the candidate into a single descriptive string for embedding.
// Optional profile fields are appended only when present so sparse records do not
// embed empty sections.
func (c *Candidate) ProfileText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s. Skills: %s. Location: %s. Experience: %s.",
		c.Name, strings.Join(c.Skills, ", "), c.Location, c.Experience)
	if c.Education != "" {
		fmt.Fprintf(&sb, " Education: %s.", c.Education)
	}
	if c.Objective != "" {
		fmt.Fprintf(&sb, " Objective: %s.", c.Objective)
	}
	if len(c.Projects) > 0 {
		fmt.Fprintf(&sb, " Projects: %s.", strings.Join(c.Projects, ", "))
	}
	if len(c.Certifications) > 0 {
		fmt.Fprintf(&sb, " Certifications: %s.", strings.Join(c.Certifications, ", "))
	}
	return sb.String()
}
