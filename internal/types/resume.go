// Package types provides type definitions for structured data used throughout the job-match-engine system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Experience represents one position held by the candidate.
type Experience struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration" validate:"gte=0"` // years in the position
}

// Education represents one education entry on the resume.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
}

// ResumeProfile is the structured resume record produced by the upstream
// parsing service. It is treated as immutable for the duration of a match call.
type ResumeProfile struct {
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience" validate:"dive"`
	Education  []Education  `json:"education"`
	Summary    string       `json:"summary"`
}

// Validate validates the ResumeProfile using the validator.
func (r *ResumeProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
