package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is a fixed typographic rule set. Zero values mean "not set".
// Lengths are in points.
type Style struct {
	FontFamily     string
	FontSize       float64
	FontWeight     string
	FontStyle      string
	LineHeight     float64
	Color          string
	TextAlign      string
	Width          string
	Flex           int
	FlexDirection  string
	JustifyContent string
	AlignItems     string
	MarginTop      float64
	MarginBottom   float64
	MarginLeft     float64
	PaddingTop     float64
	PaddingRight   float64
	PaddingBottom  float64
	PaddingLeft    float64
	BorderBottom   string
}

// CSS returns the style as an inline declaration list with a stable property order.
func (s Style) CSS() string {
	var decls []string
	add := func(prop, val string) {
		if val != "" {
			decls = append(decls, prop+": "+val)
		}
	}

	add("font-family", s.FontFamily)
	add("font-size", pt(s.FontSize))
	add("font-weight", s.FontWeight)
	add("font-style", s.FontStyle)
	if s.LineHeight != 0 {
		add("line-height", strconv.FormatFloat(s.LineHeight, 'f', -1, 64))
	}
	add("color", s.Color)
	add("text-align", s.TextAlign)
	add("width", s.Width)
	if s.Flex != 0 {
		add("flex", strconv.Itoa(s.Flex))
	}
	if s.FlexDirection != "" {
		add("display", "flex")
		add("flex-direction", s.FlexDirection)
	}
	add("justify-content", s.JustifyContent)
	add("align-items", s.AlignItems)
	add("margin-top", pt(s.MarginTop))
	add("margin-bottom", pt(s.MarginBottom))
	add("margin-left", pt(s.MarginLeft))
	add("padding-top", pt(s.PaddingTop))
	add("padding-right", pt(s.PaddingRight))
	add("padding-bottom", pt(s.PaddingBottom))
	add("padding-left", pt(s.PaddingLeft))
	add("border-bottom", s.BorderBottom)

	return strings.Join(decls, "; ")
}

func pt(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "pt"
}

// PageSize is a physical page size in points
type PageSize struct {
	Name     string
	WidthPt  float64
	HeightPt float64
}

// A4 is the only page size the document uses
var A4 = PageSize{Name: "A4", WidthPt: 595.28, HeightPt: 841.89}

// WidthInches returns the page width in inches, the unit the PDF printer takes
func (p PageSize) WidthInches() float64 { return p.WidthPt / 72 }

// HeightInches returns the page height in inches
func (p PageSize) HeightInches() float64 { return p.HeightPt / 72 }

func (p PageSize) String() string {
	return fmt.Sprintf("%s (%.2fpt x %.2fpt)", p.Name, p.WidthPt, p.HeightPt)
}

// Sheet holds the named styles used by Render
var Sheet = struct {
	Page, Header, Name, ContactInfo, Section, SectionTitle, StoryText,
	SkillLine, SkillCategory, SkillList, Item, ItemHeader, ItemTitle,
	ItemSubTitle, ItemDuration, ItemDetails, ItemList, ListItem, Bullet, ListItemText Style
}{
	Page: Style{
		FontFamily: "Helvetica", FontSize: 10, Color: "#1a202c",
		PaddingTop: 30, PaddingLeft: 40, PaddingRight: 40, PaddingBottom: 30,
	},
	Header:        Style{FlexDirection: "row", JustifyContent: "space-between", AlignItems: "baseline", MarginBottom: 15},
	Name:          Style{FontSize: 16, FontWeight: "bold"},
	ContactInfo:   Style{FontSize: 9},
	Section:       Style{MarginBottom: 12},
	SectionTitle:  Style{FontSize: 14, FontWeight: "bold", BorderBottom: "1px solid #1a202c", PaddingBottom: 3, MarginBottom: 6},
	StoryText:     Style{FontSize: 9, LineHeight: 1.3, MarginBottom: 6, TextAlign: "justify"},
	SkillLine:     Style{FlexDirection: "row", MarginBottom: 2},
	SkillCategory: Style{FontSize: 9, FontWeight: "bold", Width: "35%"},
	SkillList:     Style{FontSize: 9, Width: "65%", LineHeight: 1.3},
	Item:          Style{MarginBottom: 8},
	ItemHeader:    Style{FlexDirection: "row", JustifyContent: "space-between"},
	ItemTitle:     Style{FontSize: 11, FontWeight: "bold"},
	ItemSubTitle:  Style{FontSize: 10, FontStyle: "italic", MarginBottom: 1},
	ItemDuration:  Style{FontSize: 9, Color: "#4a5568"},
	ItemDetails:   Style{FontSize: 9, MarginTop: 1},
	ItemList:      Style{MarginLeft: 10, MarginTop: 1},
	ListItem:      Style{FlexDirection: "row"},
	Bullet:        Style{Width: "10pt", FontSize: 9},
	ListItemText:  Style{Flex: 1, FontSize: 9, LineHeight: 1.2},
}
