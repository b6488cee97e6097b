package style

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"vermeer/pkg/config"
	"vermeer/pkg/css"
	"vermeer/pkg/dom"
)

// GenericFamily is a generic font family keyword.
type GenericFamily int

const (
	FamilyDefault GenericFamily = iota
	FamilySerif
	FamilySansSerif
	FamilyMonospace
	FamilyCursive
	FamilyFantasy
)

// FontFamily is one entry of a family list: a generic keyword or a named
// family (Name non-empty).
type FontFamily struct {
	Generic GenericFamily
	Name    string
}

// FontStyle is the font-style value.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
	StyleOblique
)

// FontWeight is the numeric font weight (normal=400, bold=700).
type FontWeight float64

const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// FontStretch is the font-stretch value as a fraction of normal (1.0).
type FontStretch float64

// LineHeight is the line-height value: the normal keyword, a unitless
// multiplier, or an absolute pixel value.
type LineHeight struct {
	Normal bool
	// Factor multiplies the font size when IsFactor, otherwise Pixels
	// is absolute.
	IsFactor bool
	Factor   float64
	Pixels   float64
}

// VariantCaps is the font-variant-caps value.
type VariantCaps int

const (
	CapsNormal VariantCaps = iota
	CapsSmall
	CapsAllSmall
	CapsPetite
	CapsAllPetite
	CapsUnicase
	CapsTitling
)

// Font is the composite per-node font record. It is replaced wholesale on
// recomputation and compared against the previous record to decide whether
// dependents re-run.
type Font struct {
	Family      []FontFamily
	Size        float64
	Style       FontStyle
	Weight      FontWeight
	Stretch     FontStretch
	LineHeight  LineHeight
	VariantCaps VariantCaps
}

// DefaultFont is the record every node starts from.
func DefaultFont(cfg config.Config) Font {
	return Font{
		Family:     []FontFamily{{Generic: FamilyDefault}},
		Size:       cfg.DefaultFontSize,
		Weight:     WeightNormal,
		Stretch:    1.0,
		LineHeight: LineHeight{Normal: true},
	}
}

// Equal reports whether two font records are identical.
func (f Font) Equal(o Font) bool {
	return reflect.DeepEqual(f, o)
}

// fontAttributes is the watched set; the dispatch in Run must handle every
// name listed here, and only these names.
var fontAttributes = []string{
	"font",
	"font-family",
	"font-size",
	"font-size-adjust",
	"font-stretch",
	"font-style",
	"font-variant",
	"font-weight",
}

// FontPass recomputes the composite font record from the node's font-*
// attributes. It is node-local; the size sub-field reads the parent's
// cascaded size out of the store, which the scheduler has already settled
// because FontSizePass is registered first.
type FontPass struct {
	store *Store
}

// NewFontPass creates the font pass writing into store.
func NewFontPass(store *Store) *FontPass {
	return &FontPass{store: store}
}

// Spec declares the watched attributes.
func (p *FontPass) Spec() dom.PassSpec {
	return dom.PassSpec{
		Name:       "font",
		Attributes: fontAttributes,
		Dependency: dom.DepNone,
	}
}

// Run rebuilds the record from defaults, applies tag heuristics, then each
// present watched attribute. Unparseable values keep the default for that
// sub-field; a watched name missing from the dispatch is a fatal
// consistency error.
func (p *FontPass) Run(n *dom.Node) (bool, error) {
	cfg := p.store.Config()
	next := DefaultFont(cfg)

	applyFontTagDefaults(n, &next)

	parentSize := cfg.DefaultFontSize
	if n.Parent != nil {
		parentSize = p.store.FontSize(n.Parent.ID)
	}

	for _, name := range fontAttributes {
		raw, ok := n.Attribute(name)
		if !ok {
			continue
		}
		switch name {
		case "font":
			// shorthand expansion into longhands is out of scope;
			// the attribute is watched so a later expansion slots
			// in here without touching the watched set
		case "font-family":
			if fam, ok := parseFontFamily(raw); ok {
				next.Family = fam
			}
		case "font-size":
			if size, ok := parseFontSizeAttr(raw, parentSize, cfg); ok {
				next.Size = size
			}
		case "font-size-adjust":
			// no font matching yet, nothing to adjust against
		case "font-stretch":
			if st, ok := parseFontStretch(raw); ok {
				next.Stretch = st
			}
		case "font-style":
			if fs, ok := parseFontStyle(raw); ok {
				next.Style = fs
			}
		case "font-variant":
			if vc, ok := parseVariantCaps(raw); ok {
				next.VariantCaps = vc
			}
		case "font-weight":
			if w, ok := parseFontWeight(raw); ok {
				next.Weight = w
			}
		default:
			return false, fmt.Errorf("%w: %q in font pass", dom.ErrUnhandledAttribute, name)
		}
	}

	if next.Equal(p.store.Font(n.ID)) {
		return false, nil
	}
	p.store.font[n.ID] = next
	return true, nil
}

// applyFontTagDefaults is the tag-heuristic hook. It is currently inert:
// mapping b/strong to bold and i/em to italic waits on font matching
// support in the canvas.
func applyFontTagDefaults(n *dom.Node, f *Font) {
	if n.Kind != dom.ElementNode {
		return
	}
	switch n.Tag {
	default:
	}
}

// parseFontSizeAttr resolves a font-size attribute for the composite
// record: em relative to the parent's cascaded size, rem to the root,
// keywords through the factor table. calc() is not supported in this path
// and reads as unparseable.
func parseFontSizeAttr(raw string, parentSize float64, cfg config.Config) (float64, bool) {
	value, ok := css.ParseFontSize(raw)
	if !ok {
		return 0, false
	}
	if value.Length == nil {
		return css.KeywordFontSize(value.Keyword, css.FactorKeywords, parentSize, cfg.DefaultFontSize), true
	}
	switch l := value.Length.(type) {
	case css.Dimension:
		switch l.Unit {
		case css.Px:
			return l.Amount, true
		case css.Em:
			return l.Amount * parentSize, true
		case css.Rem:
			return l.Amount * cfg.RootSize(), true
		}
		v, err := l.Resolve(cfg.Context(parentSize, parentSize))
		if err != nil {
			return 0, false
		}
		return v, true
	case css.Percentage:
		return float64(l) * parentSize, true
	}
	return 0, false
}

func parseFontFamily(raw string) ([]FontFamily, bool) {
	var fams []FontFamily
	for _, part := range strings.Split(raw, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name == "" {
			continue
		}
		switch strings.ToLower(name) {
		case "serif":
			fams = append(fams, FontFamily{Generic: FamilySerif})
		case "sans-serif":
			fams = append(fams, FontFamily{Generic: FamilySansSerif})
		case "monospace":
			fams = append(fams, FontFamily{Generic: FamilyMonospace})
		case "cursive":
			fams = append(fams, FontFamily{Generic: FamilyCursive})
		case "fantasy":
			fams = append(fams, FontFamily{Generic: FamilyFantasy})
		default:
			fams = append(fams, FontFamily{Name: name})
		}
	}
	return fams, len(fams) > 0
}

func parseFontStyle(raw string) (FontStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal":
		return StyleNormal, true
	case "italic":
		return StyleItalic, true
	case "oblique":
		return StyleOblique, true
	}
	return StyleNormal, false
}

func parseFontWeight(raw string) (FontWeight, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal":
		return WeightNormal, true
	case "bold":
		return WeightBold, true
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && n >= 1 && n <= 1000 {
		return FontWeight(n), true
	}
	return WeightNormal, false
}

func parseFontStretch(raw string) (FontStretch, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ultra-condensed":
		return 0.5, true
	case "extra-condensed":
		return 0.625, true
	case "condensed":
		return 0.75, true
	case "semi-condensed":
		return 0.875, true
	case "normal":
		return 1.0, true
	case "semi-expanded":
		return 1.125, true
	case "expanded":
		return 1.25, true
	case "extra-expanded":
		return 1.5, true
	case "ultra-expanded":
		return 2.0, true
	}
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, "%") {
		if n, err := strconv.ParseFloat(s[:len(s)-1], 64); err == nil && n > 0 {
			return FontStretch(n / 100.0), true
		}
	}
	return 1.0, false
}

func parseVariantCaps(raw string) (VariantCaps, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal":
		return CapsNormal, true
	case "small-caps":
		return CapsSmall, true
	case "all-small-caps":
		return CapsAllSmall, true
	case "petite-caps":
		return CapsPetite, true
	case "all-petite-caps":
		return CapsAllPetite, true
	case "unicase":
		return CapsUnicase, true
	case "titling-caps":
		return CapsTitling, true
	}
	return CapsNormal, false
}
