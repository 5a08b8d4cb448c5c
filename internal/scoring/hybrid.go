package scoring

import (
	"github.com/internodyssey/intern-match/internal/types"
)

// Default weights for the base utility. They sum to 1.0.
const (
	defaultSkillWeight      = 0.5
	defaultSemanticWeight   = 0.3
	defaultLocationWeight   = 0.1
	defaultExperienceWeight = 0.1
)

// Default equity adjustments applied on top of the base utility.
const (
	defaultRuralBonus          = 0.10
	defaultPastPenalty         = 0.15
	defaultTargetedSocialBonus = 0.06
)

// Weights holds the per-feature weights of the base utility.
type Weights struct {
	Skill      float64 `json:"skill"`
	Semantic   float64 `json:"semantic"`
	Location   float64 `json:"location"`
	Experience float64 `json:"experience"`
}

// DefaultWeights returns the standard base-utility weights.
func DefaultWeights() Weights {
	return Weights{
		Skill:      defaultSkillWeight,
		Semantic:   defaultSemanticWeight,
		Location:   defaultLocationWeight,
		Experience: defaultExperienceWeight,
	}
}

// Adjustments holds the additive equity adjustments.
type Adjustments struct {
	RuralBonus    float64            `json:"rural_bonus"`
	SocialBonus   map[string]float64 `json:"social_bonus"`
	PastPenalty   float64            `json:"past_penalty"`
	TargetedBonus float64            `json:"targeted_bonus"`
}

// DefaultAdjustments returns the standard equity adjustments. Unknown social
// categories receive no bonus.
func DefaultAdjustments() Adjustments {
	return Adjustments{
		RuralBonus: defaultRuralBonus,
		SocialBonus: map[string]float64{
			"SC":                0.08,
			"ST":                0.10,
			"OBC":               0.05,
			types.SocialGeneral: 0.0,
		},
		PastPenalty:   defaultPastPenalty,
		TargetedBonus: defaultTargetedSocialBonus,
	}
}

// Scorer combines feature scores into a final hybrid score.
type Scorer struct {
	weights     Weights
	adjustments Adjustments
}

// NewScorer creates a Scorer with the given weights and adjustments.
func NewScorer(weights Weights, adjustments Adjustments) *Scorer {
	return &Scorer{weights: weights, adjustments: adjustments}
}

// NewDefaultScorer creates a Scorer with the standard weights and adjustments.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultWeights(), DefaultAdjustments())
}

// Score computes the hybrid score for a candidate against a posting, given the
// semantic similarity between their embeddings. It returns the final score and
// a breakdown exposing every term.
//
// The final score is floor-clamped at zero and deliberately has no upper
// clamp: stacked bonuses can push it above 1.0, and ranking only needs
// relative order.
func (s *Scorer) Score(cand *types.Candidate, posting *types.Posting, semSim float64) (float64, types.ScoreBreakdown) {
	skillFrac := SkillFraction(cand.Skills, posting.RequiredSkills)
	loc := LocationScore(cand.Location, posting.Location)
	exp := ExperienceScore(cand.Experience)

	base := s.weights.Skill*skillFrac +
		s.weights.Semantic*semSim +
		s.weights.Location*loc +
		s.weights.Experience*exp

	bd := types.ScoreBreakdown{
		SkillFrac:   skillFrac,
		SemanticSim: semSim,
		Location:    loc,
		Experience:  exp,
	}

	adj := 0.0
	if cand.Rural {
		bd.RuralBonus = s.adjustments.RuralBonus
		adj += s.adjustments.RuralBonus
	}
	bd.SocialBonus = s.adjustments.SocialBonus[cand.SocialCategory()]
	adj += bd.SocialBonus
	if cand.PastParticipation {
		bd.PastPenalty = s.adjustments.PastPenalty
		adj -= s.adjustments.PastPenalty
	}
	if posting.TargetedSocial != "" && cand.SocialCategory() == posting.TargetedSocial {
		bd.TargetedBonus = s.adjustments.TargetedBonus
		adj += s.adjustments.TargetedBonus
	}

	final := base + adj
	if final < 0.0 {
		final = 0.0
	}
	bd.FinalScore = final

	return final, bd
}
