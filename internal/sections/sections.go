// Package sections walks a profile in the fixed display order shared by the page and the PDF.
//
// Both renderers build their trees from the outline returned by Build, so the
// section order and the per-entry omission rules live in one place.
package sections

import "github.com/ChrisEOlsen/resume-site/internal/types"

// Kind identifies one of the six top-level resume sections
type Kind int

const (
	Header Kind = iota
	Narrative
	TechnicalSkills
	SoftSkills
	Experience
	Education
)

// Order is the display order of the top-level sections.
var Order = []Kind{Header, Narrative, TechnicalSkills, SoftSkills, Experience, Education}

// String returns the stable key used in markup attributes and outlines
func (k Kind) String() string {
	switch k {
	case Header:
		return "header"
	case Narrative:
		return "narrative"
	case TechnicalSkills:
		return "technical-skills"
	case SoftSkills:
		return "soft-skills"
	case Experience:
		return "experience"
	case Education:
		return "education"
	default:
		return "unknown"
	}
}

// Title returns the visible heading. The header section has none; it shows the name instead.
func (k Kind) Title() string {
	switch k {
	case Narrative:
		return "About Me"
	case TechnicalSkills:
		return "Technical Skills"
	case SoftSkills:
		return "Soft Skills and Other Qualities"
	case Experience:
		return "Professional Experience"
	case Education:
		return "Education & Certifications"
	default:
		return ""
	}
}

// Keys returns the String form of every kind in Order
func Keys() []string {
	keys := make([]string, len(Order))
	for i, k := range Order {
		keys[i] = k.String()
	}
	return keys
}

// Contact is the header content
type Contact struct {
	Name        string
	Location    string
	Email       string
	Link        string
	DisplayLink string
}

// Entry is one experience or education block
type Entry struct {
	Title    string
	Subtitle string
	Duration string
	Details  string
	Bullets  []string
}

// HasDuration reports whether the duration text should be shown
func (e Entry) HasDuration() bool { return e.Duration != "" }

// HasDetails reports whether the details line should be shown
func (e Entry) HasDetails() bool { return e.Details != "" }

// Section is one top-level block of the outline. Only the fields matching Kind are set.
type Section struct {
	Kind       Kind
	Title      string
	Contact    *Contact
	Paragraphs []string
	SkillRows  []types.SkillCategory
	Items      []string
	Entries    []Entry
}

// Build returns the six sections for p in Order.
// Empty sequences still produce their section; only the items are missing.
func Build(p types.Profile) []Section {
	out := make([]Section, 0, len(Order))
	for _, k := range Order {
		s := Section{Kind: k, Title: k.Title()}
		switch k {
		case Header:
			s.Contact = &Contact{
				Name:        p.Name,
				Location:    p.Contact.Location,
				Email:       p.Contact.Email,
				Link:        p.Contact.ProfileLink,
				DisplayLink: p.Contact.DisplayLink(),
			}
		case Narrative:
			s.Paragraphs = copyStrings(p.Narrative)
		case TechnicalSkills:
			s.SkillRows = make([]types.SkillCategory, len(p.Skills))
			for i, row := range p.Skills {
				s.SkillRows[i] = types.SkillCategory{Category: row.Category, Items: copyStrings(row.Items)}
			}
		case SoftSkills:
			s.Items = copyStrings(p.SoftSkills)
		case Experience:
			s.Entries = make([]Entry, len(p.Experience))
			for i, e := range p.Experience {
				s.Entries[i] = Entry{
					Title:    e.Role,
					Subtitle: e.Organization,
					Duration: e.Duration,
					Bullets:  copyStrings(e.Bullets),
				}
			}
		case Education:
			s.Entries = make([]Entry, len(p.Education))
			for i, e := range p.Education {
				s.Entries[i] = Entry{
					Title:    e.Credential,
					Subtitle: e.Institution,
					Duration: e.Duration,
					Details:  e.Details,
				}
			}
		}
		out = append(out, s)
	}
	return out
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
