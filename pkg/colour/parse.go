package colour

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	shortHexPattern = regexp.MustCompile(`^#([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
	longHexPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbPattern      = regexp.MustCompile(`(?i)^rgb\(\s*([0-9]+)\s*,\s*([0-9]+)\s*,\s*([0-9]+)\s*\)$`)
	rgbaPattern     = regexp.MustCompile(`(?i)^rgba\(\s*([0-9]+)\s*,\s*([0-9]+)\s*,\s*([0-9]+)\s*,\s*([0-9]*\.?[0-9]+)\s*\)$`)
)

// parseCSS tries each grammar in turn: #rgb, #rrggbb, rgb(), rgba(), then the
// CSS named colours. The first match wins.
func parseCSS(css string) (rgba, error) {
	s := strings.TrimSpace(css)

	if m := shortHexPattern.FindStringSubmatch(s); m != nil {
		return rgba{
			r: float64(hexDigits(m[1]) * 0x11),
			g: float64(hexDigits(m[2]) * 0x11),
			b: float64(hexDigits(m[3]) * 0x11),
			a: 1,
		}, nil
	}

	if m := longHexPattern.FindStringSubmatch(s); m != nil {
		return rgba{
			r: float64(hexDigits(m[1])),
			g: float64(hexDigits(m[2])),
			b: float64(hexDigits(m[3])),
			a: 1,
		}, nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return rgba{r: decimal(m[1]), g: decimal(m[2]), b: decimal(m[3]), a: 1}, nil
	}

	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return rgba{}, &ParseError{Input: css}
		}
		return rgba{r: decimal(m[1]), g: decimal(m[2]), b: decimal(m[3]), a: a}, nil
	}

	if c, ok := LookupName(s); ok {
		return c.rgba, nil
	}

	return rgba{}, &ParseError{Input: css}
}

// LookupName finds a CSS named colour, case-insensitively. The table is the
// 147 CSS Color Module Level 3 / SVG 1.1 keywords plus "transparent".
func LookupName(name string) (*Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "transparent" {
		return &Color{rgba: rgba{0, 0, 0, 0}}, true
	}
	c, ok := colornames.Map[key]
	if !ok {
		return nil, false
	}
	return &Color{rgba: rgba{float64(c.R), float64(c.G), float64(c.B), 1}}, true
}

// Names returns the recognised colour names, excluding "transparent".
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

// hexDigits parses a pre-validated hex string.
func hexDigits(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// decimal parses a pre-validated run of ASCII digits. Values too large for an
// int saturate, and are clamped later.
func decimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 255
	}
	return v
}
