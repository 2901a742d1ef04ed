package matching

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Weights for the experience sub-scores.
const (
	yearsWeight  = 0.5
	levelWeight  = 0.3
	domainWeight = 0.2
)

// defaultRequiredYears applies when neither the job text nor the title
// signals an experience requirement.
const defaultRequiredYears = 2

// requiredYearsPatterns extract an explicit years requirement from job text.
// The first pattern that matches wins.
var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:relevant\s*)?experience`),
	regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\s*years?`),
	regexp.MustCompile(`at\s*least\s*(\d+)\s*years?`),
}

// MatchExperience scores how the candidate's aggregated experience aligns
// with the job's inferred years, seniority level and industry domain.
func MatchExperience(tax *taxonomy.Taxonomy, experience []types.Experience, job *types.JobPosting) types.ExperienceComponent {
	if len(experience) == 0 {
		return types.ExperienceComponent{
			Score:       0,
			GapAnalysis: "No experience data available",
		}
	}

	totalYears := 0.0
	for _, exp := range experience {
		totalYears += exp.Duration
	}

	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)

	requiredYears := extractRequiredYears(title, description)
	candidateLevel := levelForYears(totalYears)
	requiredLevel := extractRequiredLevel(title, description)

	yearsScore := scoreYears(totalYears, requiredYears)
	levelScore := scoreLevelAlignment(tax, candidateLevel, requiredLevel)
	domainScore := scoreDomainMatch(tax, experience, job)

	final := yearsWeight*yearsScore + levelWeight*levelScore + domainWeight*domainScore

	return types.ExperienceComponent{
		Score:         clampScore(int(math.Round(final))),
		TotalYears:    totalYears,
		RequiredYears: requiredYears,
		LevelMatch:    candidateLevel == requiredLevel,
		GapAnalysis:   gapAnalysis(totalYears, requiredYears, candidateLevel, requiredLevel),
	}
}

// extractRequiredYears searches the job text for an explicit years
// requirement, falling back to seniority keywords in the title.
func extractRequiredYears(title, description string) int {
	text := title + " " + description
	for _, pattern := range requiredYearsPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}

	switch {
	case containsAnyOf(title, "senior", "lead", "principal"):
		return 5
	case containsAnyOf(title, "mid", "intermediate"):
		return 3
	case containsAnyOf(title, "junior", "entry"):
		return 1
	}
	return defaultRequiredYears
}

// scoreYears bands the candidate's total years against the requirement.
func scoreYears(totalYears float64, requiredYears int) float64 {
	required := float64(requiredYears)
	switch {
	case totalYears >= required:
		return 100
	case totalYears >= required*0.8:
		return 80
	case totalYears >= required*0.6:
		return 60
	default:
		return math.Max(20, totalYears/required*60)
	}
}

// levelForYears maps total experience years onto a seniority level.
func levelForYears(years float64) string {
	switch {
	case years < 1:
		return "entry"
	case years < 3:
		return "junior"
	case years < 6:
		return "mid"
	case years < 10:
		return "senior"
	default:
		return "executive"
	}
}

// extractRequiredLevel infers the required seniority from job text keywords.
func extractRequiredLevel(title, description string) string {
	text := title + " " + description
	switch {
	case containsAnyOf(text, "senior", "sr.", "lead", "principal"):
		return "senior"
	case containsAnyOf(text, "junior", "jr.", "entry", "graduate"):
		return "junior"
	case containsAnyOf(text, "mid", "intermediate"):
		return "mid"
	}
	return "mid"
}

// scoreLevelAlignment scores the ordinal distance between candidate and
// required seniority on the taxonomy's 7-point scale.
func scoreLevelAlignment(tax *taxonomy.Taxonomy, candidateLevel, requiredLevel string) float64 {
	switch tax.SeniorityDistance(candidateLevel, requiredLevel) {
	case 0:
		return 100
	case 1:
		return 80
	case 2:
		return 60
	default:
		return 40
	}
}

// scoreDomainMatch checks for industry overlap between the job and any of the
// candidate's positions. Undetermined job industry scores neutral.
func scoreDomainMatch(tax *taxonomy.Taxonomy, experience []types.Experience, job *types.JobPosting) float64 {
	jobText := strings.ToLower(job.Company + " " + job.Description)
	jobIndustries := tax.IndustriesIn(jobText)
	if len(jobIndustries) == 0 {
		return 70
	}

	resumeIndustries := make(map[string]bool)
	for _, exp := range experience {
		expText := strings.ToLower(exp.Company + " " + exp.Description)
		for _, industry := range tax.IndustriesIn(expText) {
			resumeIndustries[industry] = true
		}
	}

	for _, industry := range jobIndustries {
		if resumeIndustries[industry] {
			return 100
		}
	}
	return 50
}

// gapAnalysis builds the human-readable shortfall narrative.
func gapAnalysis(totalYears float64, requiredYears int, candidateLevel, requiredLevel string) string {
	if totalYears >= float64(requiredYears) && candidateLevel == requiredLevel {
		return "Experience requirements fully met"
	}

	var gaps []string
	if totalYears < float64(requiredYears) {
		gaps = append(gaps, fmt.Sprintf("Need %.1f more years of experience", float64(requiredYears)-totalYears))
	}
	if candidateLevel != requiredLevel {
		gaps = append(gaps, fmt.Sprintf("Experience level: %s, required: %s", candidateLevel, requiredLevel))
	}

	if len(gaps) == 0 {
		return "Experience requirements met"
	}
	return strings.Join(gaps, "; ")
}

// containsAnyOf reports whether text contains any of the given substrings.
func containsAnyOf(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
