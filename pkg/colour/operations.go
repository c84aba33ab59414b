package colour

import (
	"math"
	"math/rand/v2"
)

// darkThreshold is the YIQ brightness below which a colour counts as dark.
const darkThreshold = 131.5

// Complement returns c with its hue rotated by 180 degrees.
func (c *Color) Complement() *Color {
	return c.Copy().SetHue(c.HSV().H + 180)
}

// Negate returns c with every RGB channel inverted.
func (c *Color) Negate() *Color {
	return c.Copy().set(rgba{r: 255 - c.r, g: 255 - c.g, b: 255 - c.b, a: c.a})
}

// Lighten raises HSL lightness by pct percentage points.
func (c *Color) Lighten(pct float64) *Color {
	return c.Copy().SetLightness(c.Lightness() + pct/100)
}

// Darken lowers HSL lightness by pct percentage points.
func (c *Color) Darken(pct float64) *Color {
	return c.Lighten(-pct)
}

// Saturate raises HSL saturation by pct percentage points.
func (c *Color) Saturate(pct float64) *Color {
	return c.Copy().SetSaturationLightness(c.SaturationLightness() + pct/100)
}

// Desaturate lowers HSL saturation by pct percentage points.
func (c *Color) Desaturate(pct float64) *Color {
	return c.Saturate(-pct)
}

// FadeIn raises alpha by pct percentage points.
func (c *Color) FadeIn(pct float64) *Color {
	return c.Copy().SetAlpha(c.a + pct/100)
}

// FadeOut lowers alpha by pct percentage points.
func (c *Color) FadeOut(pct float64) *Color {
	return c.FadeIn(-pct)
}

// Grayscale fully desaturates c, keeping its HSL lightness.
func (c *Color) Grayscale() *Color {
	return c.Desaturate(100)
}

// Luma returns the BT.709 weighted sum of the RGB channels (0-255).
func (c *Color) Luma() float64 {
	return 0.2126*float64(c.Red()) + 0.7152*float64(c.Green()) + 0.0722*float64(c.Blue())
}

// brightness returns the YIQ brightness (0-255).
func (c *Color) brightness() float64 {
	return float64(c.Red()*299+c.Green()*587+c.Blue()*114) / 1000
}

// IsDark reports whether c should carry light text.
func (c *Color) IsDark() bool {
	return c.brightness() < darkThreshold
}

// IsLight reports whether c should carry dark text.
func (c *Color) IsLight() bool {
	return !c.IsDark()
}

// Mix interpolates every channel, alpha included, pct percent of the way from
// c to other. pct is clamped to [0, 100].
func (c *Color) Mix(other *Color, pct float64) *Color {
	if other == nil {
		return c.Copy()
	}
	p := clamp(pct/100, 0, 1)
	return c.Copy().set(rgba{
		r: c.r*(1-p) + other.r*p,
		g: c.g*(1-p) + other.g*p,
		b: c.b*(1-p) + other.b*p,
		a: c.a*(1-p) + other.a*p,
	})
}

// MixEven mixes c and other in equal parts.
func (c *Color) MixEven(other *Color) *Color {
	return c.Mix(other, 50)
}

// Contrast returns the summed RGB channel spread between c and other,
// normalised to [0, 1].
func (c *Color) Contrast(other *Color) float64 {
	if other == nil {
		return 0
	}
	spread := math.Abs(float64(c.Red()-other.Red())) +
		math.Abs(float64(c.Green()-other.Green())) +
		math.Abs(float64(c.Blue()-other.Blue()))
	return spread / 765
}

// RandomColorRange lightens or darkens c by a uniformly random amount in
// [-pct, +pct] percentage points.
func (c *Color) RandomColorRange(pct float64) *Color {
	return c.Lighten((rand.Float64()*2 - 1) * pct)
}

// RandomColorRangeRand is RandomColorRange drawing from rng.
func (c *Color) RandomColorRangeRand(rng *rand.Rand, pct float64) *Color {
	return c.Lighten((rng.Float64()*2 - 1) * pct)
}
