package css

// FontSizeKeyword is a font-size keyword, absolute (xx-small through
// xx-large) or relative (smaller, larger).
type FontSizeKeyword int

const (
	SizeXXSmall FontSizeKeyword = iota
	SizeXSmall
	SizeSmall
	SizeMedium
	SizeLarge
	SizeXLarge
	SizeXXLarge
	SizeSmaller
	SizeLarger
)

// KeywordTable selects which of the two historical keyword-to-pixels rules
// applies. The engine grew two divergent tables: a literal pixel table used
// by the font-size cascade, and a factor table used when building composite
// font records. Both are preserved behind this one function until product
// confirms which is canonical; see DESIGN.md.
type KeywordTable int

const (
	// LiteralKeywords maps absolute keywords to fixed pixel sizes
	// (xx-small=9 ... xx-large=32) and relative keywords to parent∓2.
	LiteralKeywords KeywordTable = iota
	// FactorKeywords maps absolute keywords to factors of the base size
	// (0.6 ... 2.0) and relative keywords to parent×0.8 / parent×1.25.
	FactorKeywords
)

var literalSizes = [...]float64{9, 10, 13, 16, 18, 24, 32}
var factorSizes = [...]float64{0.6, 0.75, 0.89, 1.0, 1.25, 1.5, 2.0}

// KeywordFontSize resolves a font-size keyword to pixels. parent is the
// parent node's computed size (for relative keywords), base the engine
// default size (for absolute keywords in the factor table).
func KeywordFontSize(kw FontSizeKeyword, table KeywordTable, parent, base float64) float64 {
	switch kw {
	case SizeSmaller:
		if table == FactorKeywords {
			return parent * 0.8
		}
		return parent - 2.0
	case SizeLarger:
		if table == FactorKeywords {
			return parent * 1.25
		}
		return parent + 2.0
	default:
		if table == FactorKeywords {
			return factorSizes[kw] * base
		}
		return literalSizes[kw]
	}
}

// FontSizeValue is a parsed font-size attribute value: either a length
// (Length non-nil, covering lengths and percentages) or a keyword.
type FontSizeValue struct {
	Length  Length
	Keyword FontSizeKeyword
}

var fontSizeKeywords = map[string]FontSizeKeyword{
	"xx-small": SizeXXSmall,
	"x-small":  SizeXSmall,
	"small":    SizeSmall,
	"medium":   SizeMedium,
	"large":    SizeLarge,
	"x-large":  SizeXLarge,
	"xx-large": SizeXXLarge,
	"smaller":  SizeSmaller,
	"larger":   SizeLarger,
}

// ParseFontSize parses a font-size value: a keyword, a length, or a
// percentage.
func ParseFontSize(s string) (FontSizeValue, bool) {
	s = normalize(s)
	if kw, ok := fontSizeKeywords[s]; ok {
		return FontSizeValue{Keyword: kw}, true
	}
	if l, ok := ParseLength(s); ok {
		return FontSizeValue{Length: l}, true
	}
	return FontSizeValue{}, false
}
