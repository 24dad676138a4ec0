package screen

import (
	_ "embed"
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed templates/page.html.tmpl
var pageTemplate string

type pageData struct {
	Title    string
	Download template.HTML
	Body     template.HTML
}

// WriteHTML writes the full page for tree to w
func WriteHTML(w io.Writer, tree VisualTree) error {
	tmpl, err := parseTemplate(pageTemplate)
	if err != nil {
		return err
	}

	data := pageData{Title: tree.Title}

	if tree.Download != nil {
		download, err := renderFragment([]*Node{tree.Download})
		if err != nil {
			return &RenderError{Message: "failed to render download link", Cause: err}
		}
		data.Download = download
	}

	body, err := renderFragment(tree.Sections)
	if err != nil {
		return &RenderError{Message: "failed to render sections", Cause: err}
	}
	data.Body = body

	if err := tmpl.Execute(w, data); err != nil {
		return &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return nil
}

// RenderString is WriteHTML into a string
func RenderString(tree VisualTree) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(&sb, tree); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func parseTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("page").Parse(content)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

// renderFragment serialises nodes with the html package, which escapes all text and attribute values.
func renderFragment(nodes []*Node) (template.HTML, error) {
	var sb strings.Builder
	for _, n := range nodes {
		if err := html.Render(&sb, toHTMLNode(n)); err != nil {
			return "", err
		}
		sb.WriteString("\n")
	}
	//nolint:gosec // produced by html.Render above
	return template.HTML(sb.String()), nil
}

func toHTMLNode(n *Node) *html.Node {
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	for _, a := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(toHTMLNode(c))
	}
	return el
}
