// Package main provides the entry point for the resume site server and its render tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ChrisEOlsen/resume-site/internal/config"
	"github.com/ChrisEOlsen/resume-site/internal/pdfgen"
	"github.com/ChrisEOlsen/resume-site/internal/profile"
)

var (
	configPath  string
	profilePath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "resume_site",
	Short:         "Personal resume site",
	Long:          "Serves a single resume as an HTML page and a downloadable one-page PDF, and renders both to files.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Path to profile JSON overriding the built-in profile (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves the configuration and builds the profile store.
// Flags win over the config file and environment.
func loadSettings() (config.Config, *profile.Store, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if profilePath != "" {
		cfg.ProfilePath = profilePath
	}
	if verbose {
		cfg.Verbose = true
	}

	store, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, store, nil
}

// newGenerator builds the headless Chrome PDF pipeline from cfg
func newGenerator(cfg config.Config) *pdfgen.Generator {
	encoder := pdfgen.NewChromeEncoder(cfg.Timeout(), cfg.ChromePath, cfg.Verbose)
	return pdfgen.NewGenerator(encoder, cfg.StrictPageCount)
}
