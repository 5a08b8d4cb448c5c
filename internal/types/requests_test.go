package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRequest_Validate(t *testing.T) {
	req := MatchRequest{
		Posting:    validPosting(),
		Candidates: []Candidate{{ID: "c1", Name: "Asha"}},
	}
	assert.NoError(t, req.Validate())
}

func TestMatchRequest_Validate_EmptyPoolIsValid(t *testing.T) {
	// An empty candidate list is a valid request; it resolves downstream to
	// the no-fresher terminal message rather than a validation failure.
	req := MatchRequest{Posting: validPosting()}
	assert.NoError(t, req.Validate())

	req.Candidates = []Candidate{}
	assert.NoError(t, req.Validate())
}

func TestMatchRequest_Validate_BadPosting(t *testing.T) {
	posting := validPosting()
	posting.RequiredSkills = nil
	req := MatchRequest{
		Posting:    posting,
		Candidates: []Candidate{{ID: "c1", Name: "Asha"}},
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "posting:")
}

func TestMatchRequest_Validate_BadCandidateIsIndexed(t *testing.T) {
	req := MatchRequest{
		Posting: validPosting(),
		Candidates: []Candidate{
			{ID: "c1", Name: "Asha"},
			{ID: "c2"}, // missing name
		},
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidates[1]:")
}

func TestSubmitJobRequest_Validate(t *testing.T) {
	req := SubmitJobRequest{
		Title:          "Data Intern",
		Description:    "Data analysis internship",
		RequiredSkills: []string{"Python"},
	}
	assert.NoError(t, req.Validate())
}

func TestSubmitJobRequest_Validate_MissingTitle(t *testing.T) {
	req := SubmitJobRequest{
		Description:    "Data analysis internship",
		RequiredSkills: []string{"Python"},
	}
	assert.Error(t, req.Validate())
}

func TestRecommendRequest_Validate(t *testing.T) {
	req := RecommendRequest{
		Candidate: Candidate{ID: "c1", Name: "Asha"},
		Jobs:      []Posting{validPosting()},
		TopK:      3,
	}
	assert.NoError(t, req.Validate())
}

func TestRecommendRequest_Validate_NoJobs(t *testing.T) {
	req := RecommendRequest{Candidate: Candidate{ID: "c1", Name: "Asha"}}
	assert.Error(t, req.Validate())
}

func TestMatchCandidatesRequest_Validate(t *testing.T) {
	req := MatchCandidatesRequest{
		Description: "Python internship",
		Candidates:  []Candidate{{ID: "c1", Name: "Asha"}},
	}
	assert.NoError(t, req.Validate())
}

func TestMatchCandidatesRequest_Validate_MissingDescription(t *testing.T) {
	req := MatchCandidatesRequest{Candidates: []Candidate{{ID: "c1", Name: "Asha"}}}
	assert.Error(t, req.Validate())
}

func TestMatchCandidatesRequest_Validate_BadCandidateIsIndexed(t *testing.T) {
	req := MatchCandidatesRequest{
		Description: "Python internship",
		Candidates:  []Candidate{{ID: "c1"}},
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidates[0]:")
}

func TestParseResumeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ParseResumeRequest{Text: "resume text"}).Validate())
	assert.Error(t, (&ParseResumeRequest{}).Validate())
}
