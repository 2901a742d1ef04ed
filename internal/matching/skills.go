// Package matching implements the multi-factor match scoring engine: four
// independent matchers (skills, experience, education, semantic similarity)
// and the aggregator that fuses them into one calibrated MatchResult.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// MatchSkills classifies every required skill as matching or missing and
// scores the overlap. Each requirement lands in exactly one bucket; matching
// is case-insensitive over trimmed names and resolves exact, substring and
// synonym matches in that order.
func MatchSkills(tax *taxonomy.Taxonomy, resumeSkills []string, requiredSkills []string) types.SkillsComponent {
	if len(requiredSkills) == 0 || len(resumeSkills) == 0 {
		return types.SkillsComponent{
			Score:          0,
			MatchingSkills: []string{},
			MissingSkills:  append([]string{}, requiredSkills...),
			MatchRatio:     0,
		}
	}

	resumeLower := make([]string, 0, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeLower = append(resumeLower, strings.ToLower(strings.TrimSpace(skill)))
	}

	matching := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)

	for _, requirement := range requiredSkills {
		reqLower := strings.ToLower(strings.TrimSpace(requirement))
		if skillSatisfied(tax, reqLower, resumeLower) {
			matching = append(matching, requirement)
		} else {
			missing = append(missing, requirement)
		}
	}

	baseScore := float64(len(matching)) / float64(len(requiredSkills)) * 100
	score := applySkillBonuses(tax, matching, baseScore)

	return types.SkillsComponent{
		Score:          score,
		MatchingSkills: matching,
		MissingSkills:  missing,
		MatchRatio:     float64(len(matching)) / float64(len(requiredSkills)),
	}
}

// skillSatisfied reports whether any resume skill covers the requirement.
func skillSatisfied(tax *taxonomy.Taxonomy, requirement string, resumeSkills []string) bool {
	for _, skill := range resumeSkills {
		if skill == requirement {
			return true
		}
	}
	for _, skill := range resumeSkills {
		if strings.Contains(skill, requirement) || strings.Contains(requirement, skill) {
			return true
		}
		if tax.SimilarSkills(requirement, skill) {
			return true
		}
	}
	return false
}

// applySkillBonuses adds category bonuses for matched skills on top of the
// base ratio score and clamps to [0,100]. Bonuses stack across distinct
// matched skills; each skill contributes at most one bonus.
func applySkillBonuses(tax *taxonomy.Taxonomy, matching []string, baseScore float64) int {
	weighted := baseScore
	for _, skill := range matching {
		weighted += float64(tax.SkillBonus(skill))
	}
	return clampScore(int(math.Round(weighted)))
}

// clampScore bounds a score to [0,100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
