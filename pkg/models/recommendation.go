package models

// Recommendation is a single career suggestion produced by a
// recommendation provider.
type Recommendation struct {
	// ID identifies the recommendation within the provider.
	ID string `json:"id"`
	// Title is the suggested role or path.
	Title string `json:"title"`
	// Summary explains the suggestion.
	Summary string `json:"summary,omitempty"`
	// MatchedSkills lists profile skills that support the suggestion.
	MatchedSkills []string `json:"matched_skills,omitempty"`
	// MatchedInterests lists profile interests that support the suggestion.
	MatchedInterests []string `json:"matched_interests,omitempty"`
	// Score is a provider-specific relevance score. Higher is better.
	Score float64 `json:"score,omitempty"`
}
