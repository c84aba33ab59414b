package colour

// Scheme names a fixed-offset hue harmony.
type Scheme string

// Supported harmony schemes.
const (
	Complementary      Scheme = "complementary"
	Analogous          Scheme = "analogous"
	Triad              Scheme = "triad"
	SplitComplementary Scheme = "split-complementary"
	Rectangle          Scheme = "rectangle"
	Square             Scheme = "square"
)

var schemeOffsets = map[Scheme][]float64{
	Complementary:      {0, 180},
	Analogous:          {0, 30, 60},
	Triad:              {0, 120, 240},
	SplitComplementary: {0, 150, 210},
	Rectangle:          {0, 60, 180, 240},
	Square:             {0, 90, 180, 270},
}

// Schemes lists the supported schemes in a stable order.
func Schemes() []Scheme {
	return []Scheme{Complementary, Analogous, Triad, SplitComplementary, Rectangle, Square}
}

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool {
	_, ok := schemeOffsets[s]
	return ok
}

// Offsets returns the hue offsets of s in degrees. Unknown schemes fall back
// to Complementary.
func (s Scheme) Offsets() []float64 {
	offsets, ok := schemeOffsets[s]
	if !ok {
		offsets = schemeOffsets[Complementary]
	}
	out := make([]float64, len(offsets))
	copy(out, offsets)
	return out
}

// Harmony returns the colours of scheme around c. index picks which entry of
// the scheme c itself occupies; it is taken modulo the scheme length and
// negative values use their absolute value. Every colour keeps c's HSV
// saturation, value and alpha.
func (c *Color) Harmony(scheme Scheme, index int) *Palette {
	offsets := scheme.Offsets()
	// Reduce before negating so math.MinInt cannot overflow.
	index %= len(offsets)
	if index < 0 {
		index = -index
	}
	start := offsets[index]

	hue := c.HSV().H
	colors := make([]*Color, len(offsets))
	for i, off := range offsets {
		colors[i] = c.Copy().SetHue(normaliseHue(hue + off - start))
	}
	return NewPalette(colors)
}

// Gradient returns n colours linearly interpolated from c to other, both
// endpoints included. n below 2 is treated as 2.
func (c *Color) Gradient(other *Color, n int) *Palette {
	if n < 2 {
		n = 2
	}
	if other == nil {
		other = c
	}

	steps := float64(n - 1)
	dr := (other.r - c.r) / steps
	dg := (other.g - c.g) / steps
	db := (other.b - c.b) / steps
	da := (other.a - c.a) / steps

	colors := make([]*Color, n)
	for i := range n {
		k := float64(i)
		colors[i] = (&Color{}).set(rgba{
			r: c.r + dr*k,
			g: c.g + dg*k,
			b: c.b + db*k,
			a: c.a + da*k,
		})
	}
	// The last entry is other itself, not an accumulated step.
	colors[n-1] = other.Copy()
	return NewPalette(colors)
}
