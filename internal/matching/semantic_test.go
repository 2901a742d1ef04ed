package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-match-engine/internal/types"
)

func TestMatchSemantic_EmptyResume(t *testing.T) {
	c := MatchSemantic(&types.ResumeProfile{}, &types.JobPosting{
		Title:       "Engineer",
		Description: "build things",
	})

	assert.Equal(t, 50, c.Score)
	assert.Equal(t, 0.5, c.Similarity)
}

func TestMatchSemantic_EmptyJob(t *testing.T) {
	c := MatchSemantic(&types.ResumeProfile{Skills: []string{"Go"}}, &types.JobPosting{})

	assert.Equal(t, 50, c.Score)
	assert.Equal(t, 0.5, c.Similarity)
}

func TestMatchSemantic_IdenticalText(t *testing.T) {
	resume := &types.ResumeProfile{Summary: "distributed systems engineer with kubernetes"}
	job := &types.JobPosting{Description: "distributed systems engineer with kubernetes"}

	c := MatchSemantic(resume, job)

	assert.Equal(t, 100, c.Score)
	assert.InDelta(t, 1.0, c.Similarity, 1e-9)
}

func TestMatchSemantic_UnrelatedText(t *testing.T) {
	resume := &types.ResumeProfile{Summary: "pastry chef specializing in croissants"}
	job := &types.JobPosting{Description: "embedded firmware developer"}

	c := MatchSemantic(resume, job)

	assert.Equal(t, 0, c.Score)
	assert.Equal(t, 0.0, c.Similarity)
}

func TestMatchSemantic_PartialOverlap(t *testing.T) {
	resume := &types.ResumeProfile{
		Skills:  []string{"Python", "AWS"},
		Summary: "backend engineer",
	}
	job := &types.JobPosting{
		Title:       "Backend Engineer",
		Description: "python services on aws",
	}

	c := MatchSemantic(resume, job)

	assert.Greater(t, c.Similarity, 0.0)
	assert.Less(t, c.Similarity, 1.0)
	assert.Equal(t, int(c.Similarity*100+0.5), c.Score)
}

func TestMatchSemantic_UsesAllResumeSections(t *testing.T) {
	// Overlap comes only from the education field; it must contribute.
	resume := &types.ResumeProfile{
		Education: []types.Education{{Degree: "Bachelor", Field: "bioinformatics"}},
	}
	job := &types.JobPosting{Description: "bioinformatics pipelines"}

	c := MatchSemantic(resume, job)

	assert.Greater(t, c.Similarity, 0.0)
}

func TestMatchSemantic_Deterministic(t *testing.T) {
	resume := &types.ResumeProfile{
		Skills: []string{"Go", "Kafka"},
		Experience: []types.Experience{
			{Position: "Engineer", Description: "event streaming platforms"},
		},
		Summary: "platform engineer",
	}
	job := &types.JobPosting{
		Title:        "Platform Engineer",
		Description:  "kafka based event streaming",
		Requirements: []string{"Go", "Kafka"},
	}

	first := MatchSemantic(resume, job)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, MatchSemantic(resume, job))
	}
}
