package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisEOlsen/resume-site/internal/observability"
	"github.com/ChrisEOlsen/resume-site/internal/profile"
	"github.com/ChrisEOlsen/resume-site/internal/screen"
)

var (
	outlineInput string
	outlineJSON  bool
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Show the section outline of a rendered page",
	Long:  "Parses a rendered resume page (or renders the current profile) and lists its sections, item counts and download link.",
	RunE:  runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineInput, "in", "i", "", "Path to a rendered HTML page (default: render the current profile)")
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "Print the outline as JSON")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(_ *cobra.Command, _ []string) error {
	var store *profile.Store
	if outlineInput == "" {
		_, s, err := loadSettings()
		if err != nil {
			return err
		}
		store = s
	}

	outline, err := outlineFrom(outlineInput, store)
	if err != nil {
		return err
	}
	return printOutline(os.Stdout, outline, outlineJSON)
}

// outlineFrom parses the page at path, or renders store's profile when path is empty
func outlineFrom(path string, store *profile.Store) (*screen.Outline, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open page: %w", err)
		}
		defer func() { _ = f.Close() }()
		return screen.ParseOutline(f)
	}

	page, err := screen.RenderString(screen.Render(store.Profile(), screen.Options{}))
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return screen.ParseOutline(strings.NewReader(page))
}

func printOutline(w io.Writer, outline *screen.Outline, asJSON bool) error {
	if !asJSON {
		observability.NewPrinter(w).PrintOutline(outline)
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outline); err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}
	return nil
}
