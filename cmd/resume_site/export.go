package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ChrisEOlsen/resume-site/internal/observability"
	"github.com/ChrisEOlsen/resume-site/internal/pdfgen"
	"github.com/ChrisEOlsen/resume-site/internal/readiness"
	"github.com/ChrisEOlsen/resume-site/internal/screen"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

var (
	exportDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static files",
	Long:  "Writes the PDF and an index.html linking to it into one directory.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Output directory (default from config, else dist)")
	rootCmd.AddCommand(exportCmd)
}

// exportResult lists the files written by exportSite
type exportResult struct {
	PagePath string
	PDFPath  string
	PDF      *pdfgen.Result
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, store, err := loadSettings()
	if err != nil {
		return err
	}
	dir := exportDir
	if dir == "" {
		dir = cfg.OutputDir
	}

	res, err := exportSite(cmd.Context(), newGenerator(cfg), store.Profile(), dir)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintPDFResult(res.PDF, res.PDFPath)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Exported %s and %s\n", res.PagePath, res.PDFPath)
	return nil
}

// exportSite renders the PDF and the page into dir. The page links to the PDF,
// so it is written only once the PDF exists, mirroring the server's readiness flag.
func exportSite(ctx context.Context, gen *pdfgen.Generator, p types.Profile, dir string) (*exportResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	out := &exportResult{
		PagePath: filepath.Join(dir, "index.html"),
		PDFPath:  filepath.Join(dir, p.DownloadFileName()),
	}
	pdfReady := readiness.New()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := writePDF(gctx, gen, p, out.PDFPath)
		if err != nil {
			return err
		}
		out.PDF = res
		pdfReady.Set()
		return nil
	})

	g.Go(func() error {
		if err := pdfReady.Wait(gctx); err != nil {
			return err
		}
		return writePage(out.PagePath, p, screen.Options{
			DownloadReady: pdfReady.Ready(),
			DownloadURL:   url.PathEscape(p.DownloadFileName()),
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
