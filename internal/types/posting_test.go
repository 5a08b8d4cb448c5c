package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPosting() Posting {
	return Posting{
		ID:             "job-1",
		Title:          "Data Intern",
		Description:    "Data analysis internship",
		RequiredSkills: []string{"Python", "SQL"},
		Location:       "Pune",
		Capacity:       5,
		Quotas:         map[string]int{QuotaRuralMin: 1, QuotaSCMin: 1},
	}
}

func TestPosting_Validate(t *testing.T) {
	p := validPosting()
	assert.NoError(t, p.Validate())
}

func TestPosting_Validate_MissingDescription(t *testing.T) {
	p := validPosting()
	p.Description = ""
	assert.Error(t, p.Validate())
}

func TestPosting_Validate_EmptyRequiredSkills(t *testing.T) {
	p := validPosting()
	p.RequiredSkills = []string{}
	assert.Error(t, p.Validate())
}

func TestPosting_Validate_NegativeCapacity(t *testing.T) {
	p := validPosting()
	p.Capacity = -1
	assert.Error(t, p.Validate())
}

func TestPosting_Validate_NegativeQuota(t *testing.T) {
	p := validPosting()
	p.Quotas = map[string]int{QuotaRuralMin: -2}
	assert.Error(t, p.Validate())
}

func TestPosting_QuotaMin(t *testing.T) {
	p := validPosting()
	assert.Equal(t, 1, p.QuotaMin(QuotaRuralMin))
	assert.Equal(t, 0, p.QuotaMin(QuotaSTMin))

	p.Quotas = nil
	assert.Equal(t, 0, p.QuotaMin(QuotaRuralMin))
}

func TestPosting_JSONRoundTrip(t *testing.T) {
	p := validPosting()
	p.TargetedSocial = "SC"

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"required_skills"`)
	assert.Contains(t, string(data), `"targeted_social":"SC"`)

	var decoded Posting
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)
}
