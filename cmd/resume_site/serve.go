package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ChrisEOlsen/resume-site/internal/readiness"
	"github.com/ChrisEOlsen/resume-site/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume web server",
	Long: `Start an HTTP server for the resume page and its PDF download.

The download link appears once headless Chrome has been found to work.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT, else 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, store, err := loadSettings()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	if cfg.Verbose {
		p := store.Profile()
		log.Printf("[server] Serving resume for %s (strict page count: %v)", p.Name, cfg.StrictPageCount)
	}

	srv := server.New(server.Config{
		Addr:    cfg.Addr(),
		Verbose: cfg.Verbose,
	}, store, newGenerator(cfg), readiness.New())

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
