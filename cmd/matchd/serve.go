package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-match-engine/internal/config"
	"github.com/jonathan/job-match-engine/internal/logger"
	"github.com/jonathan/job-match-engine/internal/matching"
	"github.com/jonathan/job-match-engine/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the match scoring API server",
	Long:  `Start an HTTP server that exposes the match scoring engine over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides MATCH_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(jsonLogs || cfg.JSONLogs, debug || cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{
		Port:   cfg.Port,
		Engine: matching.NewEngine(nil, log),
		Logger: log,
	})

	return srv.Start()
}
