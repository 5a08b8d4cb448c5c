// Package types provides type definitions for structured data used throughout the match engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Well-known quota keys in Posting.Quotas.
const (
	QuotaRuralMin = "rural_min"
	QuotaSCMin    = "SC_min"
	QuotaSTMin    = "ST_min"
)

// Posting represents an internship or job opening to fill.
type Posting struct {
	ID             string         `json:"id" validate:"required"`
	Title          string         `json:"title"`
	Description    string         `json:"description" validate:"required"`
	RequiredSkills []string       `json:"required_skills" validate:"required,min=1"`
	Location       string         `json:"location"`
	Capacity       int            `json:"capacity" validate:"gte=0"`
	Quotas         map[string]int `json:"quotas" validate:"omitempty,dive,gte=0"`
	TargetedSocial string         `json:"targeted_social,omitempty"`
}

// Validate validates the Posting using the validator.
func (p *Posting) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// QuotaMin returns the quota minimum for a key, or 0 when absent.
func (p *Posting) QuotaMin(key string) int {
	if p.Quotas == nil {
		return 0
	}
	return p.Quotas[key]
}
