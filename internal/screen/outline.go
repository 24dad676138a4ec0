package screen

import (
	"io"
	"strings"

	"github.com/ChrisEOlsen/resume-site/internal/sections"
	"github.com/PuerkitoBio/goquery"
)

// OutlineSection summarises one rendered section
type OutlineSection struct {
	Key     string `json:"key"`
	Heading string `json:"heading"`
	Items   int    `json:"items"`
	Bullets []int  `json:"bullets,omitempty"`
}

// Outline is the structure recovered from a rendered page
type Outline struct {
	Sections     []OutlineSection `json:"sections"`
	Download     bool             `json:"download"`
	DownloadFile string           `json:"download_file,omitempty"`
}

// Keys returns the section keys in document order
func (o *Outline) Keys() []string {
	keys := make([]string, len(o.Sections))
	for i, s := range o.Sections {
		keys[i] = s.Key
	}
	return keys
}

// ParseOutline reads a rendered page and reports its sections, item counts and download link.
func ParseOutline(r io.Reader) (*Outline, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &OutlineError{Message: "failed to parse HTML", Cause: err}
	}

	out := &Outline{Sections: []OutlineSection{}}

	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("data-section")
		section := OutlineSection{
			Key:     key,
			Heading: strings.TrimSpace(s.Find("h1, h2").First().Text()),
		}

		items := s.Find("[data-item]")
		section.Items = items.Length()

		if key == sections.Experience.String() {
			section.Bullets = make([]int, 0, section.Items)
			items.Each(func(_ int, entry *goquery.Selection) {
				section.Bullets = append(section.Bullets, entry.Find("[data-bullet]").Length())
			})
		}

		out.Sections = append(out.Sections, section)
	})

	if link := doc.Find("[data-download]").First(); link.Length() > 0 {
		out.Download = true
		out.DownloadFile, _ = link.Attr("download")
	}

	return out, nil
}
