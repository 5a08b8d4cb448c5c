package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MatchRequest is the caller-supplied input for a match run: one posting and
// the candidate pool to fill it from. An empty pool is valid input; the
// engine answers it with the no-fresher terminal message.
type MatchRequest struct {
	Posting    Posting     `json:"posting"`
	Candidates []Candidate `json:"candidates"`
}

// Validate validates the MatchRequest, including the nested posting and every
// candidate record, so malformed input is rejected before any scoring work.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := r.Posting.Validate(); err != nil {
		return fmt.Errorf("posting: %w", err)
	}
	for i := range r.Candidates {
		if err := r.Candidates[i].Validate(); err != nil {
			return fmt.Errorf("candidates[%d]: %w", i, err)
		}
	}
	return nil
}

// MatchResponse is the JSON-serializable outcome of a match run.
// AllCandidates carries the full scored pool for auditability.
type MatchResponse struct {
	Selected      []ScoredCandidate `json:"selected"`
	AllCandidates []ScoredCandidate `json:"all_candidates,omitempty"`
	Message       string            `json:"message"`
}

// SubmitJobRequest creates a stored posting for later matching. Capacity
// defaults to 10 and quotas to empty when omitted.
type SubmitJobRequest struct {
	Title          string         `json:"title" validate:"required"`
	Description    string         `json:"description" validate:"required"`
	RequiredSkills []string       `json:"required_skills" validate:"required,min=1"`
	Location       string         `json:"location"`
	Capacity       int            `json:"capacity" validate:"gte=0"`
	Quotas         map[string]int `json:"quotas" validate:"omitempty,dive,gte=0"`
	TargetedSocial string         `json:"targeted_social,omitempty"`
}

// Validate validates the SubmitJobRequest using the validator.
func (r *SubmitJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RecommendRequest asks for the postings that best fit one candidate profile.
type RecommendRequest struct {
	Candidate Candidate `json:"candidate"`
	Jobs      []Posting `json:"jobs" validate:"required,min=1"`
	TopK      int       `json:"top_k" validate:"gte=0"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	return r.Candidate.Validate()
}

// MatchCandidatesRequest asks for the candidates that best fit a free-text
// job description.
type MatchCandidatesRequest struct {
	Description string      `json:"description" validate:"required"`
	Candidates  []Candidate `json:"candidates" validate:"required,min=1"`
	TopK        int         `json:"top_k" validate:"gte=0"`
}

// Validate validates the MatchCandidatesRequest, including every candidate
// record.
func (r *MatchCandidatesRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	for i := range r.Candidates {
		if err := r.Candidates[i].Validate(); err != nil {
			return fmt.Errorf("candidates[%d]: %w", i, err)
		}
	}
	return nil
}

// JobRecommendation is a single ranked posting in a recommendation response.
// Confidence rescales cosine similarity from [-1,1] to a 0-100 percentage.
type JobRecommendation struct {
	JobID      string  `json:"job_id"`
	Title      string  `json:"title"`
	Confidence float64 `json:"confidence"`
}

// ParseResumeRequest wraps raw resume text for structured extraction.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
