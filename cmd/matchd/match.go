package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/logger"
	"github.com/jonathan/job-match-engine/internal/matching"
	"github.com/jonathan/job-match-engine/internal/schemas"
	"github.com/jonathan/job-match-engine/internal/types"
)

var (
	resumePath string
	jobPath    string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against one job posting",
	Long:  `Read a resume profile and a job posting from JSON files, score the match and print the result as JSON.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&resumePath, "resume", "", "Path to resume profile JSON (required)")
	matchCmd.Flags().StringVar(&jobPath, "job", "", "Path to job posting JSON (required)")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	log, err := logger.New(jsonLogs, debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resume, err := loadResume(resumePath)
	if err != nil {
		return err
	}
	job, err := loadJob(jobPath)
	if err != nil {
		return err
	}

	engine := matching.NewEngine(nil, log)
	result := engine.CalculateMatch(resume, job)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func loadResume(path string) (*types.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResumeProfile(data); err != nil {
		return nil, fmt.Errorf("invalid resume %s: %w", path, err)
	}
	var resume types.ResumeProfile
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

func loadJob(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schemas.ValidateJobPosting(data); err != nil {
		return nil, fmt.Errorf("invalid job %s: %w", path, err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}
