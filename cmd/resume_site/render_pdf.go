package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ChrisEOlsen/resume-site/internal/observability"
	"github.com/ChrisEOlsen/resume-site/internal/pdfgen"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

var (
	renderPDFOutput string
	renderPDFStrict bool
)

var renderPDFCmd = &cobra.Command{
	Use:   "render-pdf",
	Short: "Render the resume to a one-page PDF",
	Long:  "Renders the document layout of the profile and prints it to PDF with headless Chrome.",
	RunE:  runRenderPDF,
}

func init() {
	renderPDFCmd.Flags().StringVarP(&renderPDFOutput, "out", "o", "", "Path to output PDF file (default: <Name>_Resume.pdf)")
	renderPDFCmd.Flags().BoolVar(&renderPDFStrict, "strict", false, "Fail unless the PDF is exactly one page")
	rootCmd.AddCommand(renderPDFCmd)
}

func runRenderPDF(cmd *cobra.Command, _ []string) error {
	cfg, store, err := loadSettings()
	if err != nil {
		return err
	}
	if renderPDFStrict {
		cfg.StrictPageCount = true
	}

	p := store.Profile()
	out := renderPDFOutput
	if out == "" {
		out = p.DownloadFileName()
	}

	res, err := writePDF(cmd.Context(), newGenerator(cfg), p, out)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintPDFResult(res, out)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered %d page PDF to %s\n", res.Pages, out)
	}
	return nil
}

// writePDF generates the PDF for p and writes it to path, creating parent directories
func writePDF(ctx context.Context, gen *pdfgen.Generator, p types.Profile, path string) (*pdfgen.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := gen.Generate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, res.Data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}
	return res, nil
}
