package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-engine/internal/taxonomy"
	"github.com/jonathan/job-match-engine/internal/types"
)

func TestMatchExperience_NoExperience(t *testing.T) {
	c := MatchExperience(taxonomy.Default(), nil, &types.JobPosting{Title: "Engineer"})

	assert.Equal(t, 0, c.Score)
	assert.Equal(t, "No experience data available", c.GapAnalysis)
}

func TestMatchExperience_FullyMet(t *testing.T) {
	exp := []types.Experience{{Company: "Acme", Duration: 4}}
	job := &types.JobPosting{
		Title:       "Software Engineer",
		Description: "3+ years experience building services",
	}

	c := MatchExperience(taxonomy.Default(), exp, job)

	// 4 years vs 3 required, mid vs mid default level, neutral domain:
	// 0.5*100 + 0.3*100 + 0.2*70 = 94.
	assert.Equal(t, 94, c.Score)
	assert.Equal(t, 3, c.RequiredYears)
	assert.InDelta(t, 4.0, c.TotalYears, 1e-9)
	assert.True(t, c.LevelMatch)
	assert.Equal(t, "Experience requirements fully met", c.GapAnalysis)
}

func TestMatchExperience_YearsShortfallAndLevelMismatch(t *testing.T) {
	exp := []types.Experience{{Duration: 4}}
	job := &types.JobPosting{
		Title:       "Senior Software Engineer",
		Description: "5+ years experience required, bachelor degree required",
	}

	c := MatchExperience(taxonomy.Default(), exp, job)

	// yearsScore 80 (4 >= 0.8*5), levelScore 80 (mid vs senior),
	// domainScore 70 (job industry undetermined): 0.5*80+0.3*80+0.2*70 = 78.
	assert.Equal(t, 78, c.Score)
	assert.Equal(t, 5, c.RequiredYears)
	assert.False(t, c.LevelMatch)
	assert.Equal(t, "Need 1.0 more years of experience; Experience level: mid, required: senior", c.GapAnalysis)
}

func TestMatchExperience_SumsDurations(t *testing.T) {
	exp := []types.Experience{
		{Duration: 1.5},
		{Duration: 2.5},
	}
	job := &types.JobPosting{Title: "Engineer", Description: "at least 4 years"}

	c := MatchExperience(taxonomy.Default(), exp, job)

	assert.InDelta(t, 4.0, c.TotalYears, 1e-9)
	assert.Equal(t, 4, c.RequiredYears)
}

func TestMatchExperience_DomainOverlap(t *testing.T) {
	exp := []types.Experience{
		{Company: "PayFlow", Description: "built payment processing pipelines", Duration: 6},
	}
	job := &types.JobPosting{
		Title:       "Engineer",
		Company:     "FinBank",
		Description: "banking platform, 5+ years experience",
	}

	c := MatchExperience(taxonomy.Default(), exp, job)

	// yearsScore 100, levelScore 80 (senior vs mid default), domain 100:
	// 0.5*100 + 0.3*80 + 0.2*100 = 94.
	assert.Equal(t, 94, c.Score)
}

func TestExtractRequiredYears_Patterns(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"5+ years experience", 5},
		{"7 years of experience", 7},
		{"minimum of 4 years", 4},
		{"minimum 6 years", 6},
		{"at least 3 years", 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractRequiredYears("", tt.text), "text %q", tt.text)
	}
}

func TestExtractRequiredYears_TitleFallback(t *testing.T) {
	assert.Equal(t, 5, extractRequiredYears("senior engineer", ""))
	assert.Equal(t, 5, extractRequiredYears("tech lead", ""))
	assert.Equal(t, 3, extractRequiredYears("mid-level developer", ""))
	assert.Equal(t, 1, extractRequiredYears("junior developer", ""))
	assert.Equal(t, defaultRequiredYears, extractRequiredYears("software engineer", ""))
}

func TestScoreYears_Bands(t *testing.T) {
	assert.Equal(t, 100.0, scoreYears(5, 5))
	assert.Equal(t, 100.0, scoreYears(8, 5))
	assert.Equal(t, 80.0, scoreYears(4, 5))
	assert.Equal(t, 60.0, scoreYears(3, 5))
	// Below 0.6x: max(20, ratio*60). 1/5*60 = 12 -> floor 20.
	assert.Equal(t, 20.0, scoreYears(1, 5))
	// 5.5/10*60 = 33.
	assert.InDelta(t, 33.0, scoreYears(5.5, 10), 1e-9)
}

func TestLevelForYears_Bands(t *testing.T) {
	assert.Equal(t, "entry", levelForYears(0.5))
	assert.Equal(t, "junior", levelForYears(1))
	assert.Equal(t, "junior", levelForYears(2.9))
	assert.Equal(t, "mid", levelForYears(3))
	assert.Equal(t, "mid", levelForYears(5.9))
	assert.Equal(t, "senior", levelForYears(6))
	assert.Equal(t, "senior", levelForYears(9.9))
	assert.Equal(t, "executive", levelForYears(10))
}

func TestExtractRequiredLevel_Keywords(t *testing.T) {
	assert.Equal(t, "senior", extractRequiredLevel("senior engineer", ""))
	assert.Equal(t, "senior", extractRequiredLevel("", "looking for a sr. developer"))
	assert.Equal(t, "junior", extractRequiredLevel("junior developer", ""))
	assert.Equal(t, "junior", extractRequiredLevel("", "recent graduate welcome"))
	assert.Equal(t, "mid", extractRequiredLevel("intermediate engineer", ""))
	assert.Equal(t, "mid", extractRequiredLevel("software engineer", ""))
}

func TestGapAnalysis_Narratives(t *testing.T) {
	assert.Equal(t, "Experience requirements fully met", gapAnalysis(5, 5, "mid", "mid"))
	assert.Equal(t, "Need 2.0 more years of experience", gapAnalysis(3, 5, "mid", "mid"))
	assert.Equal(t, "Experience level: junior, required: senior", gapAnalysis(6, 5, "junior", "senior"))
	assert.Equal(t,
		"Need 1.5 more years of experience; Experience level: junior, required: senior",
		gapAnalysis(3.5, 5, "junior", "senior"))
}
