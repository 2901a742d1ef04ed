package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeProfileValidate_Valid(t *testing.T) {
	resume := ResumeProfile{
		Skills: []string{"Go"},
		Experience: []Experience{
			{Company: "Acme", Position: "Engineer", Duration: 2.5},
		},
		Education: []Education{
			{Degree: "Bachelor of Science", Field: "Computer Science"},
		},
		Summary: "Backend engineer",
	}

	assert.NoError(t, resume.Validate())
}

func TestResumeProfileValidate_NegativeDuration(t *testing.T) {
	resume := ResumeProfile{
		Experience: []Experience{
			{Company: "Acme", Duration: -1},
		},
	}

	assert.Error(t, resume.Validate())
}

func TestResumeProfileValidate_EmptyProfile(t *testing.T) {
	resume := ResumeProfile{}
	assert.NoError(t, resume.Validate())
}
