// Package colour provides a colour value type with conversions between RGB,
// HSV, HSL, CIE Lab and CSS forms, plus derived operations such as mixing,
// gradients and hue harmonies.
//
// RGBA is the single source of truth. Channels are held unrounded so that
// chained operations do not accumulate rounding error, and are clamped to
// [0, 255] (alpha to [0, 1]) after every operation.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a single RGBA colour. Derived operations return new values; the
// Set* methods mutate the receiver and return it for chaining.
type Color struct {
	rgba
}

// New resolves d into a Color. A *Color descriptor is copied.
func New(d Descriptor) (*Color, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: descriptor is nil", ErrInvalidDescriptor)
	}
	c, err := d.resolve()
	if err != nil {
		return nil, err
	}
	return &Color{rgba: c.normalised()}, nil
}

// MustNew is like New but panics if d cannot be resolved.
func MustNew(d Descriptor) *Color {
	c, err := New(d)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse parses a CSS colour string.
func Parse(css string) (*Color, error) {
	return New(CSS(css))
}

// MustParse is like Parse but panics on error.
func MustParse(css string) *Color {
	return MustNew(CSS(css))
}

func (c *Color) resolve() (rgba, error) {
	if c == nil {
		return rgba{}, fmt.Errorf("%w: nil colour", ErrInvalidDescriptor)
	}
	return c.rgba, nil
}

// Copy returns an independent copy of c.
func (c *Color) Copy() *Color {
	return &Color{rgba: c.rgba}
}

// set replaces the canonical state and re-normalises it.
func (c *Color) set(v rgba) *Color {
	c.rgba = v.normalised()
	return c
}

// Red returns the rounded red channel.
func (c *Color) Red() int { return roundChannel(c.r) }

// Green returns the rounded green channel.
func (c *Color) Green() int { return roundChannel(c.g) }

// Blue returns the rounded blue channel.
func (c *Color) Blue() int { return roundChannel(c.b) }

// Alpha returns the alpha channel in [0, 1].
func (c *Color) Alpha() float64 { return c.a }

// Hue returns the HSV/HSL hue rounded to whole degrees.
func (c *Color) Hue() int {
	h, _, _ := RGBToHSV(c.r, c.g, c.b)
	return int(math.Round(h)) % 360
}

// SaturationValue returns the HSV saturation.
func (c *Color) SaturationValue() float64 {
	_, s, _ := RGBToHSV(c.r, c.g, c.b)
	return s
}

// Value returns the HSV value.
func (c *Color) Value() float64 {
	_, _, v := RGBToHSV(c.r, c.g, c.b)
	return v
}

// SaturationLightness returns the HSL saturation.
func (c *Color) SaturationLightness() float64 {
	_, s, _ := RGBToHSL(c.r, c.g, c.b)
	return s
}

// Lightness returns the HSL lightness.
func (c *Color) Lightness() float64 {
	_, _, l := RGBToHSL(c.r, c.g, c.b)
	return l
}

// HSV returns the unrounded HSV view of c.
func (c *Color) HSV() HSV {
	h, s, v := RGBToHSV(c.r, c.g, c.b)
	return HSV{H: h, S: s, V: v}
}

// HSL returns the unrounded HSL view of c.
func (c *Color) HSL() HSL {
	h, s, l := RGBToHSL(c.r, c.g, c.b)
	return HSL{H: h, S: s, L: l}
}

// Lab returns the CIE L*a*b* view of c.
func (c *Color) Lab() Lab {
	l, a, b := RGBToLab(c.r, c.g, c.b)
	return Lab{L: l, A: a, B: b}
}

// LabL returns the Lab lightness.
func (c *Color) LabL() float64 { return c.Lab().L }

// LabA returns the Lab a* (green-red) coordinate.
func (c *Color) LabA() float64 { return c.Lab().A }

// LabB returns the Lab b* (blue-yellow) coordinate.
func (c *Color) LabB() float64 { return c.Lab().B }

// SetRed sets the red channel.
func (c *Color) SetRed(v float64) *Color {
	next := c.rgba
	next.r = v
	return c.set(next)
}

// SetGreen sets the green channel.
func (c *Color) SetGreen(v float64) *Color {
	next := c.rgba
	next.g = v
	return c.set(next)
}

// SetBlue sets the blue channel.
func (c *Color) SetBlue(v float64) *Color {
	next := c.rgba
	next.b = v
	return c.set(next)
}

// SetAlpha sets the alpha channel.
func (c *Color) SetAlpha(v float64) *Color {
	next := c.rgba
	next.a = v
	return c.set(next)
}

// SetHue sets the hue in degrees, keeping HSV saturation and value.
func (c *Color) SetHue(h float64) *Color {
	hsv := c.HSV()
	hsv.H = h
	return c.setHSV(hsv)
}

// SetSaturationValue sets the HSV saturation.
func (c *Color) SetSaturationValue(s float64) *Color {
	hsv := c.HSV()
	hsv.S = s
	return c.setHSV(hsv)
}

// SetValue sets the HSV value.
func (c *Color) SetValue(v float64) *Color {
	hsv := c.HSV()
	hsv.V = v
	return c.setHSV(hsv)
}

// SetSaturationLightness sets the HSL saturation.
func (c *Color) SetSaturationLightness(s float64) *Color {
	hsl := c.HSL()
	hsl.S = s
	return c.setHSL(hsl)
}

// SetLightness sets the HSL lightness.
func (c *Color) SetLightness(l float64) *Color {
	hsl := c.HSL()
	hsl.L = l
	return c.setHSL(hsl)
}

func (c *Color) setHSV(hsv HSV) *Color {
	next, _ := HSVA{H: hsv.H, S: hsv.S, V: hsv.V, A: c.a}.resolve()
	return c.set(next)
}

func (c *Color) setHSL(hsl HSL) *Color {
	next, _ := HSLA{H: hsl.H, S: hsl.S, L: hsl.L, A: c.a}.resolve()
	return c.set(next)
}

// Equals reports whether c and other have the same rounded RGB channels and
// the same alpha. A nil other never matches.
func (c *Color) Equals(other *Color) bool {
	if c == nil || other == nil {
		return false
	}
	return c.Red() == other.Red() &&
		c.Green() == other.Green() &&
		c.Blue() == other.Blue() &&
		c.a == other.a
}

// Near reports whether every RGB channel of c and other differs by at most
// 255*pct/100 and alpha by at most pct/100.
func (c *Color) Near(other *Color, pct float64) bool {
	if c == nil || other == nil {
		return false
	}
	tolerance := 255 * pct / 100
	return math.Abs(float64(c.Red()-other.Red())) <= tolerance &&
		math.Abs(float64(c.Green()-other.Green())) <= tolerance &&
		math.Abs(float64(c.Blue()-other.Blue())) <= tolerance &&
		math.Abs(c.a-other.a) <= pct/100
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c *Color) RGBA() (r, g, b, a uint32) {
	alpha := uint32(math.Round(c.a * 0xffff))
	r = uint32(c.Red()) * 0x101 * alpha / 0xffff
	g = uint32(c.Green()) * 0x101 * alpha / 0xffff
	b = uint32(c.Blue()) * 0x101 * alpha / 0xffff
	return r, g, b, alpha
}

// FromStd converts an image/color.Color. A nil value converts to opaque black.
func FromStd(c color.Color) *Color {
	v, err := New(Std{Color: c})
	if err != nil {
		return &Color{rgba: rgba{a: 1}}
	}
	return v
}

func roundChannel(v float64) int {
	return int(math.Round(v))
}
