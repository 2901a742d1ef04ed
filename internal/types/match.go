package types

import "strings"

// Recommendation is the categorical hiring advice derived from the composite score.
type Recommendation string

const (
	HighlyRecommended Recommendation = "highly_recommended"
	Recommended       Recommendation = "recommended"
	Maybe             Recommendation = "maybe"
	NotRecommended    Recommendation = "not_recommended"
)

// RecommendationForScore maps a composite score onto its recommendation band.
// Bands use inclusive lower bounds: 85, 70, 50.
func RecommendationForScore(score int) Recommendation {
	switch {
	case score >= 85:
		return HighlyRecommended
	case score >= 70:
		return Recommended
	case score >= 50:
		return Maybe
	default:
		return NotRecommended
	}
}

// SkillsComponent is the skill-overlap score with its classification lists.
type SkillsComponent struct {
	Score          int      `json:"score"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
	MatchRatio     float64  `json:"match_ratio"`
}

// ExperienceComponent is the experience-alignment score with its gap narrative.
type ExperienceComponent struct {
	Score         int     `json:"score"`
	TotalYears    float64 `json:"total_years"`
	RequiredYears int     `json:"required_years"`
	LevelMatch    bool    `json:"level_match"`
	GapAnalysis   string  `json:"gap_analysis"`
}

// EducationComponent is the education-alignment score.
type EducationComponent struct {
	Score          int    `json:"score"`
	HighestDegree  string `json:"highest_degree,omitempty"`
	RequiredDegree string `json:"required_degree,omitempty"`
	Analysis       string `json:"analysis"`
}

// SemanticComponent is the free-text similarity score.
type SemanticComponent struct {
	Score      int     `json:"score"`
	Similarity float64 `json:"similarity"`
	Analysis   string  `json:"analysis,omitempty"`
}

// Breakdown groups the four component scores behind the composite.
type Breakdown struct {
	Skills     SkillsComponent     `json:"skills_match"`
	Experience ExperienceComponent `json:"experience_match"`
	Education  EducationComponent  `json:"education_match"`
	Semantic   SemanticComponent   `json:"semantic_match"`
}

// MatchResult is the full outcome of scoring one resume against one job.
// Created fresh per call; it has no identity or lifecycle beyond the call.
type MatchResult struct {
	Score           int            `json:"score"`
	Recommendation  Recommendation `json:"recommendation"`
	Breakdown       Breakdown      `json:"breakdown"`
	MatchingSkills  []string       `json:"matching_skills"`
	MissingSkills   []string       `json:"missing_skills"`
	ExperienceGap   string         `json:"experience_gap"`
	Recommendations []string       `json:"recommendations"`
}

// normalizeKey lowercases and trims a skill string for case-insensitive
// set membership.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
