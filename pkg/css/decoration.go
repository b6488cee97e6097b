package css

import "strings"

// DecorationLine is a bit set of text-decoration lines.
type DecorationLine uint8

const (
	DecorationUnderline DecorationLine = 1 << iota
	DecorationOverline
	DecorationLineThrough
)

// DecorationNone is the empty line set.
const DecorationNone DecorationLine = 0

// Has reports whether all lines in flag are set.
func (l DecorationLine) Has(flag DecorationLine) bool {
	return l&flag == flag
}

// DecorationStyle is the text-decoration-style value. The zero value is
// solid, the CSS initial value.
type DecorationStyle int

const (
	DecorationSolid DecorationStyle = iota
	DecorationDouble
	DecorationDotted
	DecorationDashed
	DecorationWavy
)

// DecorationThickness is the text-decoration-thickness value: auto,
// from-font, or a length. The zero value is auto.
type DecorationThickness struct {
	FromFont bool
	Length   Length
}

// ParseDecorationLine parses a text-decoration-line value: "none" or a
// space-separated set of underline/overline/line-through.
func ParseDecorationLine(s string) (DecorationLine, bool) {
	s = normalize(s)
	if s == "none" {
		return DecorationNone, true
	}
	var line DecorationLine
	for _, word := range strings.Fields(s) {
		switch word {
		case "underline":
			line |= DecorationUnderline
		case "overline":
			line |= DecorationOverline
		case "line-through":
			line |= DecorationLineThrough
		default:
			return DecorationNone, false
		}
	}
	return line, line != DecorationNone
}

// ParseDecorationStyle parses a text-decoration-style value.
func ParseDecorationStyle(s string) (DecorationStyle, bool) {
	switch normalize(s) {
	case "solid":
		return DecorationSolid, true
	case "double":
		return DecorationDouble, true
	case "dotted":
		return DecorationDotted, true
	case "dashed":
		return DecorationDashed, true
	case "wavy":
		return DecorationWavy, true
	}
	return DecorationSolid, false
}

// ParseDecorationThickness parses a text-decoration-thickness value.
func ParseDecorationThickness(s string) (DecorationThickness, bool) {
	switch normalize(s) {
	case "auto":
		return DecorationThickness{}, true
	case "from-font":
		return DecorationThickness{FromFont: true}, true
	}
	if l, ok := ParseLength(s); ok {
		return DecorationThickness{Length: l}, true
	}
	return DecorationThickness{}, false
}

// Decoration is a parsed text-decoration shorthand.
type Decoration struct {
	Line      DecorationLine
	Style     DecorationStyle
	Thickness DecorationThickness
	Color     Color
}

// ParseDecoration parses the text-decoration shorthand: any order of line
// keywords, one style keyword, one thickness, one color.
func ParseDecoration(s string) (Decoration, bool) {
	d := Decoration{Color: Black}
	matched := false
	for _, word := range strings.Fields(normalize(s)) {
		if line, ok := ParseDecorationLine(word); ok && line != DecorationNone {
			d.Line |= line
			matched = true
			continue
		}
		if word == "none" {
			matched = true
			continue
		}
		if style, ok := ParseDecorationStyle(word); ok {
			d.Style = style
			matched = true
			continue
		}
		if th, ok := ParseDecorationThickness(word); ok {
			d.Thickness = th
			matched = true
			continue
		}
		if c, ok := ParseColor(word); ok {
			d.Color = c
			matched = true
			continue
		}
		return Decoration{}, false
	}
	return d, matched
}
