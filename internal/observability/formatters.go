// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChrisEOlsen/resume-site/internal/pdfgen"
	"github.com/ChrisEOlsen/resume-site/internal/screen"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, inner)
		// %-*s pads by bytes, pad by runes instead
		pad := inner - len([]rune(line))
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Contact.Location))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", profile.Contact.Email))
	sb.WriteString(fmt.Sprintf("Link:      %s\n", profile.Contact.DisplayLink()))
	sb.WriteString(fmt.Sprintf("Download:  %s\n", profile.DownloadFileName()))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Narrative: %d paragraph(s)\n", len(profile.Narrative)))

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", profile.Skills[i].Category, len(profile.Skills[i].Items)))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("Soft skills: %d\n", len(profile.SoftSkills)))

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		for _, e := range profile.Experience {
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", e.Role, e.Organization, len(e.Bullets)))
		}
	}

	sb.WriteString(fmt.Sprintf("Education: %d entr(ies)", len(profile.Education)))

	p.printBox("PROFILE", sb.String())
}

// PrintOutline outputs the sections recovered from a rendered page.
func (p *Printer) PrintOutline(outline *screen.Outline) {
	if outline == nil {
		return
	}

	var sb strings.Builder
	for i, s := range outline.Sections {
		heading := s.Heading
		if heading == "" {
			heading = "(no heading)"
		}
		sb.WriteString(fmt.Sprintf("%d. %-18s %s", i+1, s.Key, heading))
		if s.Items > 0 {
			sb.WriteString(fmt.Sprintf(" [%d]", s.Items))
		}
		sb.WriteString("\n")
	}

	if outline.Download {
		sb.WriteString(fmt.Sprintf("\nDownload: %s", outline.DownloadFile))
	} else {
		sb.WriteString("\nDownload: not offered")
	}

	p.printBox("PAGE OUTLINE", sb.String())
}

// PrintPDFResult outputs a summary of a generated PDF.
func (p *Printer) PrintPDFResult(res *pdfgen.Result, path string) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", path))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", len(res.Data)))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", res.Pages))
	sb.WriteString(fmt.Sprintf("Sections: %s", strings.Join(res.Sections, ", ")))

	p.printBox("PDF GENERATED", sb.String())
}
