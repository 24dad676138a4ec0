// Package screen renders a profile into the interactive resume page.
package screen

import (
	"github.com/ChrisEOlsen/resume-site/internal/sections"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

// Attr is a single HTML attribute. Attributes are kept in a slice so output is stable.
type Attr struct {
	Key string
	Val string
}

// Node is an element of the visual tree
type Node struct {
	Tag      string
	Class    string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// VisualTree is the rendered page: an optional download affordance plus the six sections.
type VisualTree struct {
	Title    string
	Download *Node
	Sections []*Node
}

// Options controls the parts of the page that depend on the hosting environment
type Options struct {
	// DownloadReady is the readiness flag; the download link is only emitted once it is set.
	DownloadReady bool
	DownloadURL   string
}

const (
	sectionClass = "mb-12"
	headingClass = "text-3xl font-bold text-gray-800 border-b-4 border-indigo-300 pb-2 mb-6"
	entryTitle   = "text-xl font-bold text-gray-800"
	entryMeta    = "text-sm text-gray-500 font-medium"
	entryOrg     = "text-md font-semibold text-indigo-700"
)

// Render maps p to a visual tree. It has no side effects and cannot fail.
func Render(p types.Profile, opts Options) VisualTree {
	tree := VisualTree{Title: p.Name + " - Resume"}

	if opts.DownloadReady {
		url := opts.DownloadURL
		if url == "" {
			url = "/resume.pdf"
		}
		tree.Download = &Node{
			Tag:   "a",
			Class: "flex items-center gap-2 bg-indigo-600 text-white font-semibold py-2 px-6 rounded-lg hover:bg-indigo-700 transition-colors shadow-md",
			Attrs: []Attr{
				{Key: "href", Val: url},
				{Key: "download", Val: p.DownloadFileName()},
				{Key: "data-download", Val: "pdf"},
			},
			Text: "Download as PDF",
		}
	}

	for _, s := range sections.Build(p) {
		tree.Sections = append(tree.Sections, renderSection(s))
	}
	return tree
}

func renderSection(s sections.Section) *Node {
	if s.Kind == sections.Header {
		return renderHeader(s)
	}

	n := &Node{
		Tag:   "section",
		Class: sectionClass,
		Attrs: []Attr{{Key: "data-section", Val: s.Kind.String()}},
		Children: []*Node{
			{Tag: "h2", Class: headingClass, Text: s.Title},
		},
	}
	if s.Kind == sections.Education {
		n.Class = ""
	}

	switch s.Kind {
	case sections.Narrative:
		body := &Node{Tag: "div", Class: "space-y-4 text-lg text-gray-700 leading-relaxed"}
		for _, para := range s.Paragraphs {
			body.Children = append(body.Children, item(&Node{Tag: "p", Text: para}))
		}
		n.Children = append(n.Children, body)

	case sections.TechnicalSkills:
		body := &Node{Tag: "div", Class: "space-y-4"}
		for _, row := range s.SkillRows {
			pills := &Node{Tag: "div", Class: "w-full sm:w-2/3 flex flex-wrap gap-2"}
			for _, skill := range row.Items {
				pills.Children = append(pills.Children, &Node{
					Tag:   "span",
					Class: "bg-indigo-100 text-indigo-800 text-sm font-medium px-3 py-1 rounded-full",
					Text:  skill,
				})
			}
			body.Children = append(body.Children, item(&Node{
				Tag:   "div",
				Class: "flex flex-col sm:flex-row",
				Children: []*Node{
					{Tag: "h3", Class: "w-full sm:w-1/3 font-bold text-gray-700 text-lg mb-2 sm:mb-0", Text: row.Category},
					pills,
				},
			}))
		}
		n.Children = append(n.Children, body)

	case sections.SoftSkills:
		list := &Node{Tag: "ul", Class: "list-disc list-inside text-gray-600 space-y-2 text-lg"}
		for _, skill := range s.Items {
			list.Children = append(list.Children, item(&Node{Tag: "li", Text: skill}))
		}
		n.Children = append(n.Children, list)

	case sections.Experience:
		for _, e := range s.Entries {
			n.Children = append(n.Children, item(renderExperience(e)))
		}

	case sections.Education:
		for _, e := range s.Entries {
			n.Children = append(n.Children, item(renderEducation(e)))
		}
	}

	return n
}

func renderHeader(s sections.Section) *Node {
	c := s.Contact
	links := &Node{
		Tag:   "div",
		Class: "flex justify-center items-center flex-wrap gap-x-6 gap-y-2 text-gray-600 mt-4",
		Children: []*Node{
			{Tag: "span", Class: "flex items-center gap-2", Text: c.Location},
			{
				Tag:   "a",
				Class: "flex items-center gap-2 hover:text-indigo-600",
				Attrs: []Attr{{Key: "href", Val: "mailto:" + c.Email}},
				Text:  c.Email,
			},
			{
				Tag:   "a",
				Class: "flex items-center gap-2 hover:text-indigo-600",
				Attrs: []Attr{
					{Key: "href", Val: c.Link},
					{Key: "target", Val: "_blank"},
					{Key: "rel", Val: "noopener noreferrer"},
				},
				Text: c.DisplayLink,
			},
		},
	}

	return &Node{
		Tag:   "header",
		Class: "text-center mb-12",
		Attrs: []Attr{{Key: "data-section", Val: s.Kind.String()}},
		Children: []*Node{
			{Tag: "h1", Class: "text-5xl font-extrabold text-gray-800 mb-2", Text: c.Name},
			links,
		},
	}
}

// entryHeader is the title/duration row. The row is kept even when the duration is empty.
func entryHeader(e sections.Entry, class string) *Node {
	row := &Node{
		Tag:      "div",
		Class:    class,
		Children: []*Node{{Tag: "h3", Class: entryTitle, Text: e.Title}},
	}
	if e.HasDuration() {
		row.Children = append(row.Children, &Node{Tag: "p", Class: entryMeta, Text: e.Duration})
	}
	return row
}

func renderExperience(e sections.Entry) *Node {
	bullets := &Node{Tag: "ul", Class: "list-disc list-inside text-gray-600 space-y-1"}
	for _, b := range e.Bullets {
		bullets.Children = append(bullets.Children, &Node{
			Tag:   "li",
			Attrs: []Attr{{Key: "data-bullet", Val: ""}},
			Text:  b,
		})
	}
	return &Node{
		Tag:   "div",
		Class: "mb-8 last:mb-0",
		Children: []*Node{
			entryHeader(e, "flex flex-col sm:flex-row justify-between sm:items-baseline mb-1"),
			{Tag: "p", Class: entryOrg + " mb-2", Text: e.Subtitle},
			bullets,
		},
	}
}

func renderEducation(e sections.Entry) *Node {
	n := &Node{
		Tag:   "div",
		Class: "mb-6 last:mb-0",
		Children: []*Node{
			entryHeader(e, "flex justify-between items-baseline"),
			{Tag: "p", Class: entryOrg + " mb-1", Text: e.Subtitle},
		},
	}
	if e.HasDetails() {
		n.Children = append(n.Children, &Node{Tag: "p", Class: "text-gray-600", Text: e.Details})
	}
	return n
}

// item marks n as a countable entry of its section
func item(n *Node) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: "data-item", Val: ""})
	return n
}
