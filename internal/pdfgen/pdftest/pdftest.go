// Package pdftest provides an in-process encoder and PDF fixtures for tests
// that must not depend on a local browser.
package pdftest

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ChrisEOlsen/resume-site/internal/document"
)

// MinimalPDF builds a structurally valid PDF whose page tree declares the given
// number of blank A4 pages.
func MinimalPDF(pages int) []byte {
	kids := make([]string, pages)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled below
	}
	for i := 0; i < pages; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
		objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >>")
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\n", len(objects)+1)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xref)

	return buf.Bytes()
}

// Encoder is a fake encoder returning MinimalPDF(Pages).
// When Release is non-nil every Encode call blocks until it is closed.
type Encoder struct {
	Pages     int
	EncodeErr error
	ProbeErr  error
	Release   chan struct{}
	Started   chan struct{}

	calls       atomic.Int32
	probes      atomic.Int32
	startedOnce sync.Once

	mu         sync.Mutex
	lastMarkup string
	lastSize   document.PageSize
}

// Encode records its input and returns the fixture PDF
func (e *Encoder) Encode(ctx context.Context, markup string, size document.PageSize) ([]byte, error) {
	e.calls.Add(1)
	e.mu.Lock()
	e.lastMarkup = markup
	e.lastSize = size
	e.mu.Unlock()

	if e.Started != nil {
		e.startedOnce.Do(func() { close(e.Started) })
	}
	if e.Release != nil {
		select {
		case <-e.Release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if e.EncodeErr != nil {
		return nil, e.EncodeErr
	}
	pages := e.Pages
	if pages == 0 {
		pages = 1
	}
	return MinimalPDF(pages), nil
}

// Probe returns ProbeErr
func (e *Encoder) Probe(context.Context) error {
	e.probes.Add(1)
	return e.ProbeErr
}

// Calls returns the number of Encode calls so far
func (e *Encoder) Calls() int {
	return int(e.calls.Load())
}

// Probes returns the number of Probe calls so far
func (e *Encoder) Probes() int {
	return int(e.probes.Load())
}

// LastInput returns the markup and page size of the most recent Encode call
func (e *Encoder) LastInput() (string, document.PageSize) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastMarkup, e.lastSize
}
