package colour

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Descriptor describes a colour in one of the supported models. New resolves
// any Descriptor into canonical RGBA.
type Descriptor interface {
	resolve() (rgba, error)
}

// rgba is the canonical unrounded representation.
type rgba struct {
	r, g, b, a float64
}

// normalised clamps every channel into its valid range.
func (c rgba) normalised() rgba {
	return rgba{
		r: clamp(c.r, 0, 255),
		g: clamp(c.g, 0, 255),
		b: clamp(c.b, 0, 255),
		a: clamp(c.a, 0, 1),
	}
}

// RGB describes an opaque colour by red, green and blue channels (0-255).
type RGB struct {
	R, G, B float64
}

// RGBA describes a colour by RGB channels (0-255) and alpha (0-1).
type RGBA struct {
	R, G, B, A float64
}

// HSV describes an opaque colour by hue (degrees), saturation and value (0-1).
type HSV struct {
	H, S, V float64
}

// HSVA is HSV with an alpha channel.
type HSVA struct {
	H, S, V, A float64
}

// HSL describes an opaque colour by hue (degrees), saturation and lightness (0-1).
type HSL struct {
	H, S, L float64
}

// HSLA is HSL with an alpha channel.
type HSLA struct {
	H, S, L, A float64
}

// Lab describes an opaque colour in CIE L*a*b* (D65).
type Lab struct {
	L, A, B float64
}

// LabA is Lab with an alpha channel. Alpha is named in full because A is
// already the a* axis.
type LabA struct {
	L, A, B, Alpha float64
}

// CSS describes a colour by a CSS string: #rgb, #rrggbb, rgb(), rgba() or a
// named colour.
type CSS string

// Std adapts any image/color.Color into a Descriptor.
type Std struct {
	Color color.Color
}

func (d RGB) resolve() (rgba, error)  { return rgba{d.R, d.G, d.B, 1}, nil }
func (d RGBA) resolve() (rgba, error) { return rgba{d.R, d.G, d.B, d.A}, nil }
func (d HSV) resolve() (rgba, error)  { return HSVA{d.H, d.S, d.V, 1}.resolve() }
func (d HSL) resolve() (rgba, error)  { return HSLA{d.H, d.S, d.L, 1}.resolve() }
func (d Lab) resolve() (rgba, error)  { return LabA{d.L, d.A, d.B, 1}.resolve() }
func (d CSS) resolve() (rgba, error)  { return parseCSS(string(d)) }

func (d HSVA) resolve() (rgba, error) {
	r, g, b := HSVToRGB(d.H, clamp(d.S, 0, 1), clamp(d.V, 0, 1))
	return rgba{r, g, b, d.A}, nil
}

func (d HSLA) resolve() (rgba, error) {
	r, g, b := HSLToRGB(d.H, clamp(d.S, 0, 1), clamp(d.L, 0, 1))
	return rgba{r, g, b, d.A}, nil
}

func (d LabA) resolve() (rgba, error) {
	r, g, b := LabToRGB(d.L, d.A, d.B)
	return rgba{r, g, b, d.Alpha}, nil
}

func (d Std) resolve() (rgba, error) {
	if d.Color == nil {
		return rgba{}, fmt.Errorf("%w: nil image/color value", ErrInvalidDescriptor)
	}
	r, g, b, a := d.Color.RGBA()
	if a == 0 {
		return rgba{0, 0, 0, 0}, nil
	}
	// Undo alpha premultiplication.
	return rgba{
		r: float64(r) * 255 / float64(a),
		g: float64(g) * 255 / float64(a),
		b: float64(b) * 255 / float64(a),
		a: float64(a) / 0xffff,
	}, nil
}

// Fields describes a colour by a dynamic key set, as decoded from JSON, YAML
// or a "k=v" list. Keys are matched in this order:
//
//	r|red, g|green, b|blue           RGB
//	h|hue, s|saturation, l|lightness HSL (needs both s and l)
//	h|hue, s|saturation, v|value     HSV
//	l|L, a, b                        Lab
//
// When a short and a long key are both present the short key wins. Alpha is
// read from a|alpha, except for Lab where a is the a* axis and only alpha is
// used. Missing channels default to 0 and missing alpha to 1.
type Fields map[string]float64

func (f Fields) resolve() (rgba, error) {
	if f == nil {
		return rgba{}, fmt.Errorf("%w: nil fields", ErrInvalidDescriptor)
	}

	alpha := f.get(1, "a", "alpha")
	switch {
	case f.has("r", "red"):
		return rgba{
			r: f.get(0, "r", "red"),
			g: f.get(0, "g", "green"),
			b: f.get(0, "b", "blue"),
			a: alpha,
		}, nil
	case f.has("l", "lightness") && f.has("s", "saturation"):
		return HSLA{
			H: f.get(0, "h", "hue"),
			S: f.get(0, "s", "saturation"),
			L: f.get(0, "l", "lightness"),
			A: alpha,
		}.resolve()
	case f.has("v", "value"):
		return HSVA{
			H: f.get(0, "h", "hue"),
			S: f.get(0, "s", "saturation"),
			V: f.get(0, "v", "value"),
			A: alpha,
		}.resolve()
	case f.has("l", "L") && f.has("a") && f.has("b"):
		return LabA{
			L:     f.get(0, "l", "L"),
			A:     f["a"],
			B:     f["b"],
			Alpha: f.get(1, "alpha"),
		}.resolve()
	}

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return rgba{}, fmt.Errorf("%w: unrecognised keys [%s]", ErrInvalidDescriptor, strings.Join(keys, ", "))
}

// has reports whether any of keys is present.
func (f Fields) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := f[k]; ok {
			return true
		}
	}
	return false
}

// get returns the first present key, in order, or def.
func (f Fields) get(def float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := f[k]; ok {
			return v
		}
	}
	return def
}
