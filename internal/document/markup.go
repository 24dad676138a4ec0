package document

import (
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed templates/print.html.tmpl
var printTemplate string

type printData struct {
	Title      string
	Author     string
	PageWidth  string
	PageHeight string
	Pages      template.HTML
}

// Markup serialises doc into self-contained print HTML.
// All styling is inline so the encoder needs no external resources.
func Markup(doc Document) (string, error) {
	if len(doc.Pages) == 0 {
		return "", &RenderError{Message: "document has no pages"}
	}

	tmpl, err := template.New("print").Parse(printTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse template", Cause: err}
	}

	size := doc.Pages[0].Size
	var pages strings.Builder
	for i, page := range doc.Pages {
		if page.Size != size {
			return "", &RenderError{Message: fmt.Sprintf("page %d size %s differs from %s", i+1, page.Size, size)}
		}
		if err := html.Render(&pages, pageNode(i, page)); err != nil {
			return "", &RenderError{Message: "failed to render page", Cause: err}
		}
		pages.WriteString("\n")
	}

	var out strings.Builder
	err = tmpl.Execute(&out, printData{
		Title:      doc.Title,
		Author:     doc.Author,
		PageWidth:  pt(size.WidthPt),
		PageHeight: pt(size.HeightPt),
		//nolint:gosec // produced by html.Render above
		Pages: template.HTML(pages.String()),
	})
	if err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return out.String(), nil
}

func pageNode(index int, page Page) *html.Node {
	n := element("page", page.Style)
	n.Attr = append([]html.Attribute{
		{Key: "class", Val: "page"},
		{Key: "data-page", Val: strconv.Itoa(index + 1)},
	}, n.Attr...)
	for _, b := range page.Children {
		n.AppendChild(blockNode(b))
	}
	return n
}

func blockNode(b *Block) *html.Node {
	n := element(string(b.Kind), b.Style)
	if b.Section != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "data-section", Val: b.Section})
	}
	if b.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: b.Text})
	}
	for _, c := range b.Children {
		n.AppendChild(blockNode(c))
	}
	return n
}

// element returns a div tagged with its block kind. Text blocks are divs too so siblings stack.
func element(kind string, style Style) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	n.Attr = append(n.Attr, html.Attribute{Key: "data-kind", Val: kind})
	if css := style.CSS(); css != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
	}
	return n
}
