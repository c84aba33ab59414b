package colour

import (
	"fmt"
	"math"
	"strconv"
)

// Hex returns the colour as "#rrggbb" in lower case. Alpha is dropped.
func (c *Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// RGBAString returns "rgba(R,G,B,A)".
func (c *Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.Red(), c.Green(), c.Blue(), fraction(c.a))
}

// HSLString returns "hsl(H,S,L)" with S and L as fractions.
func (c *Color) HSLString() string {
	h, s, l := RGBToHSL(c.r, c.g, c.b)
	return fmt.Sprintf("hsl(%d,%s,%s)", wholeDegrees(h), fraction(s), fraction(l))
}

// HSLAString returns "hsla(H,S,L,A)".
func (c *Color) HSLAString() string {
	h, s, l := RGBToHSL(c.r, c.g, c.b)
	return fmt.Sprintf("hsla(%d,%s,%s,%s)", wholeDegrees(h), fraction(s), fraction(l), fraction(c.a))
}

// HSVString returns "hsv(H,S,V)" with S and V as fractions.
func (c *Color) HSVString() string {
	h, s, v := RGBToHSV(c.r, c.g, c.b)
	return fmt.Sprintf("hsv(%d,%s,%s)", wholeDegrees(h), fraction(s), fraction(v))
}

// LabString returns "lab(L,a,b)" with two decimal places.
func (c *Color) LabString() string {
	lab := c.Lab()
	return fmt.Sprintf("lab(%.2f,%.2f,%.2f)", lab.L, lab.A, lab.B)
}

// RGBNumber packs the rounded channels as R<<16 | G<<8 | B.
func (c *Color) RGBNumber() int {
	return c.Red()<<16 | c.Green()<<8 | c.Blue()
}

// String returns Hex for opaque colours and RGBAString otherwise.
func (c *Color) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.a == 1 {
		return c.Hex()
	}
	return c.RGBAString()
}

// fraction rounds v to two decimal places and drops trailing zeros.
func fraction(v float64) string {
	v = math.Round(clamp(v, 0, 1)*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func wholeDegrees(h float64) int {
	return int(math.Round(h)) % 360
}
