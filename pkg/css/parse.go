package css

import (
	"strconv"
	"strings"
)

// The parsers below turn raw attribute text into the typed unions the
// resolver switches on. They cover the subset of CSS value syntax this
// engine consumes: plain lengths, percentages, and calc()/min()/max()/
// clamp() arithmetic. Failure is reported with a false second return;
// callers decide whether that is recoverable (see the pass implementations).

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseLength parses a length-like expression.
func ParseLength(s string) (Length, bool) {
	return parseLengthExpr(normalize(s))
}

func parseLengthExpr(s string) (Length, bool) {
	if inner, ok := functionBody(s, "calc"); ok {
		return parseCalcSum(inner)
	}
	if inner, ok := functionBody(s, "min"); ok {
		args, ok := parseCalcArgs(inner)
		if !ok {
			return nil, false
		}
		return Min{Args: args}, true
	}
	if inner, ok := functionBody(s, "max"); ok {
		args, ok := parseCalcArgs(inner)
		if !ok {
			return nil, false
		}
		return Max{Args: args}, true
	}
	if inner, ok := functionBody(s, "clamp"); ok {
		args, ok := parseCalcArgs(inner)
		if !ok || len(args) != 3 {
			return nil, false
		}
		return Clamp{Lo: args[0], Val: args[1], Hi: args[2]}, true
	}
	return parseTerm(s)
}

// functionBody returns the argument text of name(...) if s is exactly that
// function call.
func functionBody(s, name string) (string, bool) {
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return "", false
	}
	body := s[len(name)+1 : len(s)-1]
	// reject things like "min(1px) + max(2px)" masquerading as one call
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", false
			}
		}
	}
	return strings.TrimSpace(body), depth == 0
}

func parseCalcArgs(s string) ([]Length, bool) {
	parts := splitTopLevel(s, ",")
	if len(parts) == 0 {
		return nil, false
	}
	args := make([]Length, 0, len(parts))
	for _, part := range parts {
		arg, ok := parseCalcSum(strings.TrimSpace(part))
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}
	return args, true
}

// parseCalcSum parses "a + b - c" with the required whitespace around the
// additive operators.
func parseCalcSum(s string) (Length, bool) {
	terms := splitTopLevel(s, " + ")
	var result Length
	for _, term := range terms {
		// each additive term may itself contain " - " subtractions
		subs := splitTopLevel(term, " - ")
		var chunk Length
		for i, sub := range subs {
			v, ok := parseCalcProduct(strings.TrimSpace(sub))
			if !ok {
				return nil, false
			}
			if i == 0 {
				chunk = v
			} else {
				chunk = Sum{A: chunk, B: Product{Scalar: -1, Of: v}}
			}
		}
		if result == nil {
			result = chunk
		} else {
			result = Sum{A: result, B: chunk}
		}
	}
	return result, result != nil
}

// parseCalcProduct parses "2 * 10px", "10px * 2" or "10px / 2".
func parseCalcProduct(s string) (Length, bool) {
	if parts := splitTopLevel(s, "*"); len(parts) == 2 {
		a := strings.TrimSpace(parts[0])
		b := strings.TrimSpace(parts[1])
		if n, err := strconv.ParseFloat(a, 64); err == nil {
			of, ok := parseCalcValue(b)
			if !ok {
				return nil, false
			}
			return Product{Scalar: n, Of: of}, true
		}
		if n, err := strconv.ParseFloat(b, 64); err == nil {
			of, ok := parseCalcValue(a)
			if !ok {
				return nil, false
			}
			return Product{Scalar: n, Of: of}, true
		}
		return nil, false
	}
	if parts := splitTopLevel(s, "/"); len(parts) == 2 {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || n == 0 {
			return nil, false
		}
		of, ok := parseCalcValue(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, false
		}
		return Product{Scalar: 1 / n, Of: of}, true
	}
	return parseCalcValue(s)
}

func parseCalcValue(s string) (Length, bool) {
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return parseCalcSum(strings.TrimSpace(s[1 : len(s)-1]))
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		// a bare number inside calc() is a pixel count
		return Dimension{Amount: n, Unit: Px}, true
	}
	return parseLengthExpr(s)
}

var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	// longer suffixes first so "vmin" is not read as "n" after "vmi"
	{"vmin", Vmin},
	{"vmax", Vmax},
	{"rem", Rem},
	{"px", Px},
	{"em", Em},
	{"vw", Vw},
	{"vh", Vh},
}

func parseTerm(s string) (Length, bool) {
	if strings.HasSuffix(s, "%") {
		n, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		if err != nil {
			return nil, false
		}
		return Percentage(n / 100.0), true
	}
	for _, u := range unitSuffixes {
		if strings.HasSuffix(s, u.suffix) {
			n, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-len(u.suffix)]), 64)
			if err != nil {
				return nil, false
			}
			return Dimension{Amount: n, Unit: u.unit}, true
		}
	}
	// a bare number is taken as pixels
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Dimension{Amount: n, Unit: Px}, true
	}
	return nil, false
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// parentheses. Returns s itself as the single element when sep is absent.
func splitTopLevel(s, sep string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && strings.HasPrefix(s[i:], sep) {
			parts = append(parts, s[start:i])
			i += len(sep) - 1
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// ParseBorderSideWidth parses a border width: a keyword or a length.
func ParseBorderSideWidth(s string) (BorderSideWidth, bool) {
	switch normalize(s) {
	case "thin":
		return BorderSideWidth{Keyword: Thin}, true
	case "medium":
		return BorderSideWidth{Keyword: Medium}, true
	case "thick":
		return BorderSideWidth{Keyword: Thick}, true
	}
	if l, ok := ParseLength(s); ok {
		return BorderSideWidth{Length: l}, true
	}
	return BorderSideWidth{}, false
}
