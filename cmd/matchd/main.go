// Package main provides the entry point for the job match scoring service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	jsonLogs bool
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "matchd",
	Short: "Resume/job match scoring service",
	Long:  "matchd scores how well a candidate's resume matches a job posting, producing a fit score, a hiring recommendation and a breakdown explaining the score.",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
