// Package document renders a profile into a fixed-size, single page layout for PDF output.
//
// The tree produced by Render fully determines what ends up on the page:
// every block carries absolute typographic rules from Sheet, nothing depends
// on the viewer's screen.
package document

import (
	"strings"

	"github.com/ChrisEOlsen/resume-site/internal/sections"
	"github.com/ChrisEOlsen/resume-site/internal/types"
)

// Kind is the layout primitive of a block
type Kind string

const (
	View Kind = "view"
	Text Kind = "text"
)

// Block is a node of the document tree
type Block struct {
	Kind     Kind
	Style    Style
	Text     string
	Section  string
	Children []*Block
}

// Page is one fixed-size page
type Page struct {
	Size     PageSize
	Style    Style
	Children []*Block
}

// Document is the full layout handed to the PDF encoder
type Document struct {
	Title    string
	Author   string
	FileName string
	Pages    []Page
}

// SectionKeys returns the section keys of the top-level blocks of every page, in order
func (d Document) SectionKeys() []string {
	var keys []string
	for _, page := range d.Pages {
		for _, b := range page.Children {
			if b.Section != "" {
				keys = append(keys, b.Section)
			}
		}
	}
	return keys
}

// Render maps p to a one-page A4 document. It has no side effects and cannot fail.
func Render(p types.Profile) Document {
	page := Page{Size: A4, Style: Sheet.Page}
	for _, s := range sections.Build(p) {
		page.Children = append(page.Children, renderSection(s))
	}

	return Document{
		Title:    p.Name + " Resume",
		Author:   p.Name,
		FileName: p.DownloadFileName(),
		Pages:    []Page{page},
	}
}

func text(style Style, s string) *Block {
	return &Block{Kind: Text, Style: style, Text: s}
}

func view(style Style, children ...*Block) *Block {
	return &Block{Kind: View, Style: style, Children: children}
}

func renderSection(s sections.Section) *Block {
	if s.Kind == sections.Header {
		c := s.Contact
		contact := strings.Join([]string{c.Location, c.Email, c.DisplayLink}, " | ")
		b := view(Sheet.Header, text(Sheet.Name, c.Name), text(Sheet.ContactInfo, contact))
		b.Section = s.Kind.String()
		return b
	}

	b := view(Sheet.Section, text(Sheet.SectionTitle, s.Title))
	b.Section = s.Kind.String()

	switch s.Kind {
	case sections.Narrative:
		for _, para := range s.Paragraphs {
			b.Children = append(b.Children, text(Sheet.StoryText, para))
		}

	case sections.TechnicalSkills:
		for _, row := range s.SkillRows {
			b.Children = append(b.Children, view(Sheet.SkillLine,
				text(Sheet.SkillCategory, row.Category+":"),
				text(Sheet.SkillList, strings.Join(row.Items, ", ")),
			))
		}

	case sections.SoftSkills:
		b.Children = append(b.Children, bulletList(s.Items))

	case sections.Experience:
		for _, e := range s.Entries {
			b.Children = append(b.Children, view(Sheet.Item,
				itemHeader(e),
				text(Sheet.ItemSubTitle, e.Subtitle),
				bulletList(e.Bullets),
			))
		}

	case sections.Education:
		for _, e := range s.Entries {
			item := view(Sheet.Item, itemHeader(e), text(Sheet.ItemSubTitle, e.Subtitle))
			if e.HasDetails() {
				item.Children = append(item.Children, text(Sheet.ItemDetails, e.Details))
			}
			b.Children = append(b.Children, item)
		}
	}

	return b
}

func itemHeader(e sections.Entry) *Block {
	row := view(Sheet.ItemHeader, text(Sheet.ItemTitle, e.Title))
	if e.HasDuration() {
		row.Children = append(row.Children, text(Sheet.ItemDuration, e.Duration))
	}
	return row
}

func bulletList(items []string) *Block {
	list := view(Sheet.ItemList)
	for _, it := range items {
		list.Children = append(list.Children, view(Sheet.ListItem,
			text(Sheet.Bullet, "• "),
			text(Sheet.ListItemText, it),
		))
	}
	return list
}
