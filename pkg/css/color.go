package css

import (
	"strconv"
	"strings"
)

// Color is an RGBA color. Channels are 0-255, alpha is 0.0-1.0.
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Black = Color{0, 0, 0, 1.0}
	White = Color{255, 255, 255, 1.0}
)

var namedColors = map[string]Color{
	"red":         {255, 0, 0, 1.0},
	"green":       {0, 128, 0, 1.0},
	"blue":        {0, 0, 255, 1.0},
	"yellow":      {255, 255, 0, 1.0},
	"cyan":        {0, 255, 255, 1.0},
	"magenta":     {255, 0, 255, 1.0},
	"white":       {255, 255, 255, 1.0},
	"black":       {0, 0, 0, 1.0},
	"gray":        {128, 128, 128, 1.0},
	"orange":      {255, 165, 0, 1.0},
	"purple":      {128, 0, 128, 1.0},
	"pink":        {255, 192, 203, 1.0},
	"brown":       {165, 42, 42, 1.0},
	"lime":        {0, 255, 0, 1.0},
	"navy":        {0, 0, 128, 1.0},
	"teal":        {0, 128, 128, 1.0},
	"silver":      {192, 192, 192, 1.0},
	"transparent": {0, 0, 0, 0.0},
}

// ParseColor parses a named color, #rgb/#rrggbb hex, or rgb()/rgba()
// functional notation.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBColor(s[4:len(s)-1], false)
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return parseRGBColor(s[5:len(s)-1], true)
	}
	return Color{}, false
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		// #abc expands to #aabbcc
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 1.0,
	}, true
}

func parseRGBColor(args string, hasAlpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, false
		}
		ch[i] = uint8(n)
	}
	alpha := 1.0
	if hasAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, false
		}
		alpha = a
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}
