package scoring

import (
	"testing"

	"github.com/internodyssey/intern-match/internal/types"
	"github.com/stretchr/testify/assert"
)

const scoreTolerance = 1e-9

func testPosting() *types.Posting {
	return &types.Posting{
		ID:             "job-1",
		Title:          "Data Intern",
		Description:    "Data analysis internship",
		RequiredSkills: []string{"Python", "SQL"},
		Location:       "Pune",
		Capacity:       5,
	}
}

func TestScore_BaseUtilityOnly(t *testing.T) {
	scorer := NewDefaultScorer()
	cand := types.Candidate{
		ID:         "c1",
		Name:       "Asha",
		Skills:     []string{"Python"},
		Location:   "Pune",
		Experience: "fresher",
	}

	final, bd := scorer.Score(&cand, testPosting(), 0.8)

	// 0.5*0.5 + 0.3*0.8 + 0.1*1.0 + 0.1*1.0 = 0.69
	assert.InDelta(t, 0.69, final, scoreTolerance)
	assert.InDelta(t, 0.5, bd.SkillFrac, scoreTolerance)
	assert.InDelta(t, 0.8, bd.SemanticSim, scoreTolerance)
	assert.Equal(t, 1.0, bd.Location)
	assert.Equal(t, 1.0, bd.Experience)
	assert.Zero(t, bd.RuralBonus)
	assert.Zero(t, bd.SocialBonus)
	assert.Zero(t, bd.PastPenalty)
	assert.Zero(t, bd.TargetedBonus)
	assert.InDelta(t, final, bd.FinalScore, scoreTolerance)
}

func TestScore_RuralBonus(t *testing.T) {
	scorer := NewDefaultScorer()
	cand := types.Candidate{ID: "c1", Name: "Asha", Rural: true, Experience: "fresher"}

	final, bd := scorer.Score(&cand, testPosting(), 0.0)

	// base = 0.1*1.0 (experience only), plus rural 0.10
	assert.InDelta(t, 0.20, final, scoreTolerance)
	assert.InDelta(t, 0.10, bd.RuralBonus, scoreTolerance)
}

func TestScore_SocialCategoryBonuses(t *testing.T) {
	scorer := NewDefaultScorer()
	tests := []struct {
		social string
		bonus  float64
	}{
		{"SC", 0.08},
		{"ST", 0.10},
		{"OBC", 0.05},
		{"General", 0.0},
		{"", 0.0},        // defaults to General
		{"Unknown", 0.0}, // unmapped categories get no bonus
	}

	for _, tt := range tests {
		cand := types.Candidate{ID: "c1", Name: "Asha", Social: tt.social, Experience: "fresher"}
		_, bd := scorer.Score(&cand, testPosting(), 0.0)
		assert.InDelta(t, tt.bonus, bd.SocialBonus, scoreTolerance, "social=%q", tt.social)
	}
}

func TestScore_PastParticipationPenalty(t *testing.T) {
	scorer := NewDefaultScorer()
	cand := types.Candidate{ID: "c1", Name: "Asha", Experience: "fresher", PastParticipation: true}

	final, bd := scorer.Score(&cand, testPosting(), 0.0)

	// base 0.1, minus 0.15, clamped at zero
	assert.Equal(t, 0.0, final)
	assert.InDelta(t, 0.15, bd.PastPenalty, scoreTolerance)
}

func TestScore_FloorClampAtZero(t *testing.T) {
	scorer := NewDefaultScorer()
	cand := types.Candidate{ID: "c1", Name: "Asha", Experience: "5 years", PastParticipation: true}

	// Negative similarity plus the penalty drives the raw score below zero.
	final, bd := scorer.Score(&cand, testPosting(), -1.0)
	assert.Equal(t, 0.0, final)
	assert.Equal(t, 0.0, bd.FinalScore)
}

func TestScore_NoUpperClamp(t *testing.T) {
	scorer := NewDefaultScorer()
	cand := types.Candidate{
		ID:         "c1",
		Name:       "Asha",
		Skills:     []string{"Python", "SQL"},
		Location:   "Pune",
		Experience: "fresher",
		Rural:      true,
		Social:     "ST",
	}
	posting := testPosting()
	posting.TargetedSocial = "ST"

	final, _ := scorer.Score(&cand, posting, 1.0)

	// 0.5 + 0.3 + 0.1 + 0.1 = 1.0 base, +0.10 rural +0.10 ST +0.06 targeted
	assert.InDelta(t, 1.26, final, scoreTolerance)
	assert.Greater(t, final, 1.0)
}

func TestScore_TargetedBonusRequiresExactCategory(t *testing.T) {
	scorer := NewDefaultScorer()
	posting := testPosting()
	posting.TargetedSocial = "SC"

	sc := types.Candidate{ID: "c1", Name: "Asha", Social: "SC", Experience: "fresher"}
	_, bd := scorer.Score(&sc, posting, 0.0)
	assert.InDelta(t, 0.06, bd.TargetedBonus, scoreTolerance)

	st := types.Candidate{ID: "c2", Name: "Ravi", Social: "ST", Experience: "fresher"}
	_, bd = scorer.Score(&st, posting, 0.0)
	assert.Zero(t, bd.TargetedBonus)
}

func TestScore_NoTargetedBonusWhenPostingUntargeted(t *testing.T) {
	scorer := NewDefaultScorer()
	cand := types.Candidate{ID: "c1", Name: "Asha", Social: "SC", Experience: "fresher"}

	_, bd := scorer.Score(&cand, testPosting(), 0.0)
	assert.Zero(t, bd.TargetedBonus)
	assert.InDelta(t, 0.08, bd.SocialBonus, scoreTolerance)
}

func TestScore_CustomWeights(t *testing.T) {
	scorer := NewScorer(
		Weights{Skill: 1.0},
		Adjustments{},
	)
	cand := types.Candidate{ID: "c1", Name: "Asha", Skills: []string{"Python", "SQL"}, Rural: true}

	final, _ := scorer.Score(&cand, testPosting(), 0.9)

	// Only the skill term contributes; zeroed adjustments grant no rural bonus.
	assert.InDelta(t, 1.0, final, scoreTolerance)
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Skill+w.Semantic+w.Location+w.Experience, scoreTolerance)
}
