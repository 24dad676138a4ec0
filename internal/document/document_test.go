package document

import (
	"strings"
	"testing"

	"github.com/ChrisEOlsen/resume-site/internal/profile"
	"github.com/ChrisEOlsen/resume-site/internal/sections"
	"github.com/ChrisEOlsen/resume-site/internal/types"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SinglePageSixSections(t *testing.T) {
	doc := Render(profile.Default())

	require.Len(t, doc.Pages, 1)
	assert.Equal(t, A4, doc.Pages[0].Size)
	assert.Equal(t, sections.Keys(), doc.SectionKeys())
	assert.Equal(t, "Christopher_Olsen_Resume.pdf", doc.FileName)
	assert.Equal(t, "Christopher Olsen", doc.Author)
}

func TestRender_HeaderContactLine(t *testing.T) {
	doc := Render(profile.Default())
	header := doc.Pages[0].Children[0]

	require.Len(t, header.Children, 2)
	assert.Equal(t, "Christopher Olsen", header.Children[0].Text)
	assert.Equal(t, Sheet.Name, header.Children[0].Style)
	assert.Equal(t, "New York, NY | chrisolsenweb@gmail.com | github.com/ChrisEOlsen", header.Children[1].Text)
}

func TestRender_SkillRowsInOrder(t *testing.T) {
	p := profile.Default()
	doc := Render(p)
	skills := doc.Pages[0].Children[sections.TechnicalSkills]

	// title + one row per category
	require.Len(t, skills.Children, len(p.Skills)+1)
	for i, row := range skills.Children[1:] {
		assert.Equal(t, p.Skills[i].Category+":", row.Children[0].Text)
		assert.Equal(t, strings.Join(p.Skills[i].Items, ", "), row.Children[1].Text)
	}
}

func TestRender_EmptySoftSkills(t *testing.T) {
	p := profile.Default()
	p.SoftSkills = nil

	doc := Render(p)
	soft := doc.Pages[0].Children[sections.SoftSkills]
	require.Len(t, soft.Children, 2)
	assert.Equal(t, "Soft Skills and Other Qualities", soft.Children[0].Text)
	assert.Empty(t, soft.Children[1].Children)
}

func TestRender_ExperienceBullets(t *testing.T) {
	p := profile.Default()
	p.Experience = []types.Experience{
		{Role: "Second", Organization: "B", Duration: "2020", Bullets: []string{"x", "y"}},
		{Role: "First", Organization: "A", Duration: "2018", Bullets: []string{"z"}},
	}

	doc := Render(p)
	exp := doc.Pages[0].Children[sections.Experience]
	require.Len(t, exp.Children, 3)

	for i, want := range p.Experience {
		entry := exp.Children[i+1]
		assert.Equal(t, want.Role, entry.Children[0].Children[0].Text)
		assert.Equal(t, want.Organization, entry.Children[1].Text)
		assert.Len(t, entry.Children[2].Children, len(want.Bullets))
	}
}

func TestRender_EducationOptionalLines(t *testing.T) {
	p := profile.Default()
	p.Education = []types.Education{
		{Credential: "Plain", Institution: "X"},
		{Credential: "Full", Institution: "Y", Duration: "2024", Details: "Honours"},
	}

	doc := Render(p)
	edu := doc.Pages[0].Children[sections.Education]
	require.Len(t, edu.Children, 3)

	plain := edu.Children[1]
	require.Len(t, plain.Children, 2)
	assert.Len(t, plain.Children[0].Children, 1, "header row keeps the title without duration")

	full := edu.Children[2]
	require.Len(t, full.Children, 3)
	assert.Equal(t, "2024", full.Children[0].Children[1].Text)
	assert.Equal(t, "Honours", full.Children[2].Text)
	assert.Equal(t, Sheet.ItemDetails, full.Children[2].Style)
}

func TestRender_Idempotent(t *testing.T) {
	p := profile.Default()
	assert.Equal(t, Render(p), Render(p))

	first, err := Markup(Render(p))
	require.NoError(t, err)
	second, err := Markup(Render(p))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMarkup_Structure(t *testing.T) {
	out, err := Markup(Render(profile.Default()))
	require.NoError(t, err)

	assert.Contains(t, out, "@page { size: 595.28pt 841.89pt; margin: 0; }")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	pages := doc.Find(".page")
	require.Equal(t, 1, pages.Length())

	var keys []string
	pages.First().Children().Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("data-section")
		keys = append(keys, key)
	})
	assert.Equal(t, sections.Keys(), keys)

	style, ok := pages.First().Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "font-family: Helvetica")
	assert.Contains(t, style, "font-size: 10pt")
	assert.Contains(t, style, "padding-left: 40pt")
}

func TestMarkup_EscapesText(t *testing.T) {
	p := profile.Default()
	p.SoftSkills = []string{"<img src=x onerror=alert(1)>"}

	out, err := Markup(Render(p))
	require.NoError(t, err)
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;img src=x onerror=alert(1)&gt;")
}

func TestMarkup_NoPages(t *testing.T) {
	_, err := Markup(Document{})
	require.Error(t, err)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestMarkup_MixedPageSizes(t *testing.T) {
	doc := Render(profile.Default())
	doc.Pages = append(doc.Pages, Page{Size: PageSize{Name: "Letter", WidthPt: 612, HeightPt: 792}})

	_, err := Markup(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2 size")
}

func TestStyle_CSS(t *testing.T) {
	assert.Equal(t, "", Style{}.CSS())
	assert.Equal(t, "font-size: 9pt; line-height: 1.3; text-align: justify; margin-bottom: 6pt", Sheet.StoryText.CSS())
	assert.Equal(t, "display: flex; flex-direction: row; margin-bottom: 2pt", Sheet.SkillLine.CSS())
	assert.Equal(t, "font-size: 9pt; width: 10pt", Sheet.Bullet.CSS())
}

func TestPageSize_Inches(t *testing.T) {
	assert.InDelta(t, 8.27, A4.WidthInches(), 0.01)
	assert.InDelta(t, 11.69, A4.HeightInches(), 0.01)
}
