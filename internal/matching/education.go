package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// degreeKeywords signal that a job posting carries an education requirement.
var degreeKeywords = []string{"degree", "bachelor", "master", "phd", "education"}

// MatchEducation scores the candidate's highest degree against the degree
// level inferred from the job posting. Jobs with no education requirement
// score full; a resume with no education entries scores neutral.
func MatchEducation(tax *taxonomy.Taxonomy, education []types.Education, job *types.JobPosting) types.EducationComponent {
	if len(education) == 0 {
		return types.EducationComponent{
			Score:    50,
			Analysis: "No education data available",
		}
	}

	description := strings.ToLower(job.Description)
	if !requiresDegree(description, job.Requirements) {
		return types.EducationComponent{
			Score:    100,
			Analysis: "No specific education requirements",
		}
	}

	highest := highestDegree(tax, education)
	required := requiredDegree(description, job.Requirements)

	candidateScore := tax.DegreeScore(highest, 50)
	requiredScore := tax.DegreeScore(required, 70)

	score := 100.0
	if candidateScore < requiredScore {
		score = math.Max(50, float64(candidateScore)/float64(requiredScore)*100)
	}

	return types.EducationComponent{
		Score:          clampScore(int(math.Round(score))),
		HighestDegree:  highest,
		RequiredDegree: required,
		Analysis:       fmt.Sprintf("Has %s, requires %s", highest, required),
	}
}

// requiresDegree reports whether the job text or requirements mention any
// education keyword.
func requiresDegree(description string, requirements []string) bool {
	for _, keyword := range degreeKeywords {
		if strings.Contains(description, keyword) {
			return true
		}
		for _, req := range requirements {
			if strings.Contains(strings.ToLower(req), keyword) {
				return true
			}
		}
	}
	return false
}

// highestDegree walks the taxonomy's degree hierarchy from highest to lowest
// and returns the first level present in the candidate's education entries.
// Defaults to bachelor when nothing matches.
func highestDegree(tax *taxonomy.Taxonomy, education []types.Education) string {
	for _, level := range tax.DegreeHierarchy {
		for _, edu := range education {
			degree := strings.ToLower(edu.Degree)
			if strings.Contains(degree, level) {
				return level
			}
			if level == "phd" && strings.Contains(degree, "doctorate") {
				return level
			}
		}
	}
	return "bachelor"
}

// requiredDegree infers the minimum degree level from the job text.
func requiredDegree(description string, requirements []string) string {
	text := description + " " + strings.ToLower(strings.Join(requirements, " "))
	switch {
	case strings.Contains(text, "phd") || strings.Contains(text, "doctorate"):
		return "phd"
	case strings.Contains(text, "master") || strings.Contains(text, "mba"):
		return "master"
	case strings.Contains(text, "bachelor") || strings.Contains(text, "degree"):
		return "bachelor"
	}
	return "bachelor"
}
