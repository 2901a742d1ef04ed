package matching

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

// Composite weights over the four component scores. They sum to 1.0, so the
// composite stays inside the component range.
const (
	skillsMatchWeight     = 0.4
	experienceMatchWeight = 0.3
	semanticMatchWeight   = 0.2
	educationMatchWeight  = 0.1
)

// Recommendation trigger thresholds.
const (
	experienceAdviceBelow = 70
	skillsAdviceBelow     = 60
	maxSkillSuggestions   = 3
)

// Engine orchestrates the four matchers and fuses their scores. It holds only
// immutable configuration, so one Engine is safe for concurrent match calls.
type Engine struct {
	tax    *taxonomy.Taxonomy
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil taxonomy selects the built-in tables;
// a nil logger disables logging.
func NewEngine(tax *taxonomy.Taxonomy, logger *zap.Logger) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{tax: tax, logger: logger}
}

// CalculateMatch scores a resume against a job posting. The four matchers run
// concurrently and are failure-isolated: a panic inside one is replaced by
// that matcher's fallback component, and a failure spanning the pipeline is
// replaced by the global fallback result. CalculateMatch never panics and
// always returns a well-formed result.
func (e *Engine) CalculateMatch(resume *types.ResumeProfile, job *types.JobPosting) (result *types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("match calculation failed, returning fallback result",
				zap.Any("panic", r))
			result = fallbackResult()
		}
	}()

	if resume == nil || job == nil {
		e.logger.Error("match calculation received nil input, returning fallback result")
		return fallbackResult()
	}

	requiredSkills := job.RequiredSkills()

	var breakdown types.Breakdown
	var g errgroup.Group

	g.Go(func() error {
		breakdown.Skills = e.skillsComponent(resume, requiredSkills)
		return nil
	})
	g.Go(func() error {
		breakdown.Experience = e.experienceComponent(resume, job)
		return nil
	})
	g.Go(func() error {
		breakdown.Education = e.educationComponent(resume, job)
		return nil
	})
	g.Go(func() error {
		breakdown.Semantic = e.semanticComponent(resume, job)
		return nil
	})

	// Matchers recover internally and never return errors; Wait is the join
	// barrier before scores are combined.
	_ = g.Wait()

	composite := skillsMatchWeight*float64(breakdown.Skills.Score) +
		experienceMatchWeight*float64(breakdown.Experience.Score) +
		semanticMatchWeight*float64(breakdown.Semantic.Score) +
		educationMatchWeight*float64(breakdown.Education.Score)
	score := clampScore(int(math.Round(composite)))

	return &types.MatchResult{
		Score:           score,
		Recommendation:  types.RecommendationForScore(score),
		Breakdown:       breakdown,
		MatchingSkills:  breakdown.Skills.MatchingSkills,
		MissingSkills:   breakdown.Skills.MissingSkills,
		ExperienceGap:   breakdown.Experience.GapAnalysis,
		Recommendations: buildRecommendations(breakdown.Skills, breakdown.Experience),
	}
}

// skillsComponent runs the skill matcher with panic isolation. The fallback
// reports every requirement as missing so the classification invariant holds
// even on failure.
func (e *Engine) skillsComponent(resume *types.ResumeProfile, requiredSkills []string) (c types.SkillsComponent) {
	defer e.recoverComponent("skills", func() {
		c = types.SkillsComponent{
			MatchingSkills: []string{},
			MissingSkills:  append([]string{}, requiredSkills...),
		}
	})
	return MatchSkills(e.tax, resume.Skills, requiredSkills)
}

// experienceComponent runs the experience matcher with panic isolation.
func (e *Engine) experienceComponent(resume *types.ResumeProfile, job *types.JobPosting) (c types.ExperienceComponent) {
	defer e.recoverComponent("experience", func() {
		c = types.ExperienceComponent{Score: 0, GapAnalysis: "No experience data available"}
	})
	return MatchExperience(e.tax, resume.Experience, job)
}

// educationComponent runs the education matcher with panic isolation.
func (e *Engine) educationComponent(resume *types.ResumeProfile, job *types.JobPosting) (c types.EducationComponent) {
	defer e.recoverComponent("education", func() {
		c = types.EducationComponent{Score: 50, Analysis: "No education data available"}
	})
	return MatchEducation(e.tax, resume.Education, job)
}

// semanticComponent runs the semantic matcher with panic isolation.
func (e *Engine) semanticComponent(resume *types.ResumeProfile, job *types.JobPosting) (c types.SemanticComponent) {
	defer e.recoverComponent("semantic", func() {
		c = types.SemanticComponent{Score: 50, Similarity: 0.5, Analysis: "Unable to calculate semantic similarity"}
	})
	return MatchSemantic(resume, job)
}

// recoverComponent logs a matcher-internal failure and substitutes the
// matcher's fallback component. Failures never propagate past the matcher
// boundary.
func (e *Engine) recoverComponent(matcher string, fallback func()) {
	if r := recover(); r != nil {
		e.logger.Warn("matcher failed, substituting fallback component",
			zap.String("matcher", matcher),
			zap.Any("panic", r))
		fallback()
	}
}

// buildRecommendations compiles advisory strings in fixed order: skill gap,
// experience gap, general skill breadth. Clauses whose trigger is false are
// omitted.
func buildRecommendations(skills types.SkillsComponent, experience types.ExperienceComponent) []string {
	recommendations := []string{}

	if len(skills.MissingSkills) > 0 {
		top := skills.MissingSkills
		if len(top) > maxSkillSuggestions {
			top = top[:maxSkillSuggestions]
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Consider developing skills in: %s", strings.Join(top, ", ")))
	}
	if experience.Score < experienceAdviceBelow {
		recommendations = append(recommendations, "Gain more relevant work experience in the field")
	}
	if skills.Score < skillsAdviceBelow {
		recommendations = append(recommendations, "Expand technical skill set to better match job requirements")
	}

	return recommendations
}

// fallbackResult is the whole-result fallback for failures spanning matchers.
func fallbackResult() *types.MatchResult {
	return &types.MatchResult{
		Score:           50,
		Recommendation:  types.Maybe,
		Breakdown:       types.Breakdown{},
		MatchingSkills:  []string{},
		MissingSkills:   []string{},
		ExperienceGap:   "",
		Recommendations: []string{},
	}
}
