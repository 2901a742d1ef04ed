// Package schemas provides JSON Schema validation for the two input documents
// accepted at the service boundary. The schemas are embedded in the binary;
// they are part of the engine's contract, not deploy-time artifacts.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_profile.schema.json
var resumeProfileSchema string

//go:embed job_posting.schema.json
var jobPostingSchema string

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResumeProfile validates raw JSON against the ResumeProfile schema.
func ValidateResumeProfile(jsonContent []byte) error {
	return validateAgainst(resumeProfileSchema, jsonContent)
}

// ValidateJobPosting validates raw JSON against the JobPosting schema.
func ValidateJobPosting(jsonContent []byte) error {
	return validateAgainst(jobPostingSchema, jsonContent)
}

func validateAgainst(schemaContent string, jsonContent []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
