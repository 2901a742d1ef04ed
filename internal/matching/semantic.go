package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/job-match-engine/internal/textsim"
	"github.com/jonathan/job-match-engine/internal/types"
)

// MatchSemantic scores the textual similarity between the whole resume and
// the whole job posting. The vectorizer is fit per call on exactly these two
// documents; no vocabulary survives the call. Empty text on either side
// yields the neutral default.
func MatchSemantic(resume *types.ResumeProfile, job *types.JobPosting) types.SemanticComponent {
	resumeText := resumeBlob(resume)
	jobText := jobBlob(job)

	if resumeText == "" || jobText == "" {
		return types.SemanticComponent{Score: 50, Similarity: 0.5}
	}

	similarity := textsim.Similarity(resumeText, jobText)

	return types.SemanticComponent{
		Score:      clampScore(int(math.Round(similarity * 100))),
		Similarity: similarity,
		Analysis:   fmt.Sprintf("Semantic similarity: %.2f", similarity),
	}
}

// resumeBlob concatenates skills, experience text, education fields and the
// summary into one document.
func resumeBlob(resume *types.ResumeProfile) string {
	var parts []string

	if len(resume.Skills) > 0 {
		parts = append(parts, strings.Join(resume.Skills, " "))
	}
	for _, exp := range resume.Experience {
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
		if exp.Position != "" {
			parts = append(parts, exp.Position)
		}
	}
	for _, edu := range resume.Education {
		if edu.Field != "" {
			parts = append(parts, edu.Field)
		}
		if edu.Degree != "" {
			parts = append(parts, edu.Degree)
		}
	}
	if resume.Summary != "" {
		parts = append(parts, resume.Summary)
	}

	return strings.Join(parts, " ")
}

// jobBlob concatenates title, description, requirements and skills into one
// document.
func jobBlob(job *types.JobPosting) string {
	var parts []string

	if job.Title != "" {
		parts = append(parts, job.Title)
	}
	if job.Description != "" {
		parts = append(parts, job.Description)
	}
	parts = append(parts, job.Requirements...)
	parts = append(parts, job.Skills...)

	return strings.Join(parts, " ")
}
