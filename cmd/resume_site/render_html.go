package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ChrisEOlsen/resume-site/internal/screen"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

var (
	renderHTMLOutput      string
	renderHTMLDownload    bool
	renderHTMLDownloadURL string
)

var renderHTMLCmd = &cobra.Command{
	Use:   "render-html",
	Short: "Render the resume page to a static HTML file",
	Long:  "Renders the screen layout of the profile to a standalone HTML file.",
	RunE:  runRenderHTML,
}

func init() {
	renderHTMLCmd.Flags().StringVarP(&renderHTMLOutput, "out", "o", "", "Path to output HTML file (required)")
	renderHTMLCmd.Flags().BoolVar(&renderHTMLDownload, "download", false, "Include the PDF download link")
	renderHTMLCmd.Flags().StringVar(&renderHTMLDownloadURL, "download-url", "", "Download link target (default: the PDF file name)")

	if err := renderHTMLCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderHTMLCmd)
}

func runRenderHTML(_ *cobra.Command, _ []string) error {
	_, store, err := loadSettings()
	if err != nil {
		return err
	}

	p := store.Profile()
	opts := screen.Options{DownloadReady: renderHTMLDownload, DownloadURL: renderHTMLDownloadURL}
	if opts.DownloadURL == "" {
		opts.DownloadURL = url.PathEscape(p.DownloadFileName())
	}

	if err := writePage(renderHTMLOutput, p, opts); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered page to %s\n", renderHTMLOutput)
	return nil
}

// writePage renders p with opts and writes the page to path, creating parent directories
func writePage(path string, p types.Profile, opts screen.Options) error {
	page, err := screen.RenderString(screen.Render(p, opts))
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
