// Package pdfgen turns document markup into PDF bytes using a headless browser.
package pdfgen

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/ChrisEOlsen/resume-site/internal/document"
)

// DefaultTimeout bounds a single browser session
const DefaultTimeout = 30 * time.Second

// Encoder converts self-contained print markup into a binary document
type Encoder interface {
	// Encode prints markup onto pages of the given size
	Encode(ctx context.Context, markup string, size document.PageSize) ([]byte, error)
	// Probe reports whether the encoder can be used at all
	Probe(ctx context.Context) error
}

// ChromeEncoder prints markup with headless Chrome via the DevTools protocol.
// Requires Chrome/Chromium to be installed on the system.
type ChromeEncoder struct {
	Timeout  time.Duration
	ExecPath string
	Verbose  bool
}

// NewChromeEncoder creates a ChromeEncoder. A zero timeout selects DefaultTimeout.
func NewChromeEncoder(timeout time.Duration, execPath string, verbose bool) *ChromeEncoder {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromeEncoder{Timeout: timeout, ExecPath: execPath, Verbose: verbose}
}

// browser starts a fresh headless browser bound to ctx. The returned cancel releases it.
func (e *ChromeEncoder) browser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)

	return browserCtx, func() {
		cancelTimeout()
		cancelBrowser()
		cancelAlloc()
	}
}

// Probe launches the browser once and loads a blank page
func (e *ChromeEncoder) Probe(ctx context.Context) error {
	if e.Verbose {
		log.Printf("[pdf] Probing headless browser")
	}

	browserCtx, cancel := e.browser(ctx)
	defer cancel()

	if err := chromedp.Run(browserCtx, chromedp.Navigate("about:blank")); err != nil {
		return &EncodeError{Message: "browser unavailable", Cause: err}
	}
	return nil
}

// Encode loads markup into a blank page and prints it
func (e *ChromeEncoder) Encode(ctx context.Context, markup string, size document.PageSize) ([]byte, error) {
	if e.Verbose {
		log.Printf("[pdf] Printing %d bytes of markup on %s", len(markup), size)
	}

	browserCtx, cancel := e.browser(ctx)
	defer cancel()

	var data []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(size.WidthInches()).
				WithPaperHeight(size.HeightInches()).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			if err != nil {
				return err
			}
			data = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &EncodeError{Message: "print to pdf failed", Cause: err}
	}

	if e.Verbose {
		log.Printf("[pdf] Encoded %d bytes", len(data))
	}
	return data, nil
}
