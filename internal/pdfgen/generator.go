package pdfgen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/ChrisEOlsen/resume-site/internal/document"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

// ExpectedPages is the page count of a well-formed resume
const ExpectedPages = 1

// Result is one generated PDF
type Result struct {
	Data     []byte
	FileName string
	Pages    int
	Sections []string
}

// Generator runs Profile -> document tree -> markup -> PDF.
// Concurrent requests producing identical markup share one encoder call.
type Generator struct {
	encoder Encoder
	strict  bool
	group   singleflight.Group
}

// NewGenerator creates a Generator. In strict mode a PDF that does not have
// exactly ExpectedPages pages is an error, otherwise it is only logged.
func NewGenerator(encoder Encoder, strict bool) *Generator {
	return &Generator{encoder: encoder, strict: strict}
}

// Encoder returns the underlying encoder
func (g *Generator) Encoder() Encoder {
	return g.encoder
}

type encoded struct {
	data  []byte
	pages int
}

// Generate renders p and encodes it to PDF
func (g *Generator) Generate(ctx context.Context, p types.Profile) (*Result, error) {
	doc := document.Render(p)
	markup, err := document.Markup(doc)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256([]byte(markup))
	key := hex.EncodeToString(sum[:])

	// the shared call must outlive any single caller that gives up
	shared := context.WithoutCancel(ctx)
	ch := g.group.DoChan(key, func() (interface{}, error) {
		return g.encode(shared, markup, doc.Pages[0].Size)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		enc := res.Val.(encoded)
		return &Result{
			Data:     enc.data,
			FileName: doc.FileName,
			Pages:    enc.pages,
			Sections: doc.SectionKeys(),
		}, nil
	}
}

func (g *Generator) encode(ctx context.Context, markup string, size document.PageSize) (encoded, error) {
	data, err := g.encoder.Encode(ctx, markup, size)
	if err != nil {
		var encErr *EncodeError
		if errors.As(err, &encErr) {
			return encoded{}, err
		}
		return encoded{}, &EncodeError{Message: "encoder failed", Cause: err}
	}

	pages, err := PageCount(data)
	if err != nil {
		return encoded{}, &EncodeError{Message: "encoder produced an unreadable pdf", Cause: err}
	}

	if pages != ExpectedPages {
		if g.strict {
			return encoded{}, &PageCountError{Expected: ExpectedPages, Actual: pages}
		}
		log.Printf("[pdf] Warning: document has %d pages, expected %d", pages, ExpectedPages)
	}

	return encoded{data: data, pages: pages}, nil
}
