// Package types provides type definitions for structured data used throughout the resume site.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile is the single record holding all resume content.
// It is built once at startup and never mutated afterwards.
type Profile struct {
	Name       string          `json:"name" validate:"required"`
	Contact    Contact         `json:"contact"`
	Narrative  []string        `json:"narrative"`
	Skills     []SkillCategory `json:"skills" validate:"dive"`
	SoftSkills []string        `json:"soft_skills"`
	Experience []Experience    `json:"experience" validate:"dive"`
	Education  []Education     `json:"education" validate:"dive"`
}

// Contact holds the header contact details
type Contact struct {
	Location    string `json:"location"`
	Email       string `json:"email" validate:"omitempty,email"`
	ProfileLink string `json:"profile_link" validate:"omitempty,url"`
}

// SkillCategory is one row of the technical skills section.
// Skills is a slice of categories rather than a map so display order is fixed by the data.
type SkillCategory struct {
	Category string   `json:"category" validate:"required"`
	Items    []string `json:"items"`
}

// Experience represents one job entry, newest first
type Experience struct {
	Role         string   `json:"role" validate:"required"`
	Organization string   `json:"organization" validate:"required"`
	Duration     string   `json:"duration"`
	Bullets      []string `json:"bullets"`
}

// Education represents a degree or certification entry
type Education struct {
	Credential  string `json:"credential" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Duration    string `json:"duration,omitempty"`
	Details     string `json:"details,omitempty"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// DownloadFileName returns the file name offered for the PDF download.
// Only the first space of the name is replaced, e.g. "Ada King" -> "Ada_King_Resume.pdf".
func (p *Profile) DownloadFileName() string {
	return strings.Replace(p.Name, " ", "_", 1) + "_Resume.pdf"
}

// DisplayLink returns the profile link without its https:// scheme
func (c Contact) DisplayLink() string {
	return strings.TrimPrefix(c.ProfileLink, "https://")
}

// Clone returns a deep copy of the profile so callers cannot share backing arrays.
func (p *Profile) Clone() Profile {
	out := Profile{
		Name:       p.Name,
		Contact:    p.Contact,
		Narrative:  cloneStrings(p.Narrative),
		SoftSkills: cloneStrings(p.SoftSkills),
	}

	if p.Skills != nil {
		out.Skills = make([]SkillCategory, len(p.Skills))
		for i, s := range p.Skills {
			out.Skills[i] = SkillCategory{Category: s.Category, Items: cloneStrings(s.Items)}
		}
	}

	if p.Experience != nil {
		out.Experience = make([]Experience, len(p.Experience))
		for i, e := range p.Experience {
			e.Bullets = cloneStrings(e.Bullets)
			out.Experience[i] = e
		}
	}

	if p.Education != nil {
		out.Education = make([]Education, len(p.Education))
		copy(out.Education, p.Education)
	}

	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
