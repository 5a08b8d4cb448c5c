package types

// ScoreBreakdown records every term that went into a candidate's final score so a
// caller can reconstruct the computation.
type ScoreBreakdown struct {
	SkillFrac     float64 `json:"skill_frac"`
	SemanticSim   float64 `json:"semantic_sim"`
	Location      float64 `json:"location"`
	Experience    float64 `json:"experience"`
	SocialBonus   float64 `json:"social_bonus"`
	RuralBonus    float64 `json:"rural_bonus"`
	TargetedBonus float64 `json:"targeted_bonus"`
	PastPenalty   float64 `json:"past_penalty"`
	FinalScore    float64 `json:"final_score"`
}

// ScoredCandidate pairs a candidate with its final score and breakdown.
type ScoredCandidate struct {
	Candidate  Candidate      `json:"candidate"`
	FinalScore float64        `json:"final_score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// SelectionResult is the ordered outcome of a quota-constrained selection.
// Selected preserves pass order: rural quota picks first, then the configured
// category passes, then the merit fill. It is not re-sorted by score.
type SelectionResult struct {
	Selected []ScoredCandidate `json:"selected"`
	Message  string            `json:"message"`
}
