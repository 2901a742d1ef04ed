package types

import (
	"github.com/go-playground/validator/v10"
)

// JobPosting is the job record a resume is scored against. Immutable input.
type JobPosting struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
}

// RequiredSkills returns the deduplicated union of explicit requirements and
// listed skills, preserving first-seen order and original casing.
// Deduplication is case-insensitive after trimming.
func (j *JobPosting) RequiredSkills() []string {
	seen := make(map[string]bool, len(j.Requirements)+len(j.Skills))
	union := make([]string, 0, len(j.Requirements)+len(j.Skills))

	for _, list := range [][]string{j.Requirements, j.Skills} {
		for _, s := range list {
			key := normalizeKey(s)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			union = append(union, s)
		}
	}

	return union
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
