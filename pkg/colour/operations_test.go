package colour

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOperationsHex(t *testing.T) {
	c := MustNew(pink)

	tests := []struct {
		name string
		got  *Color
		want string
	}{
		{"complement", c.Complement(), "#19ffcd"},
		{"negate", c.Negate(), "#00e6b4"},
		{"lighten", c.Lighten(10), "#ff4c73"},
		{"darken", c.Darken(10), "#e50032"},
		{"saturate", c.Saturate(10), "#ff194b"},
		{"desaturate", c.Desaturate(10), "#f42552"},
		{"grayscale", c.Grayscale(), "#8c8c8c"},
		{"lighten fully", c.Lighten(100), "#ffffff"},
		{"darken fully", c.Darken(100), "#000000"},
		{"short hex lighten", MustParse("#4af").Lighten(20), "#aad8ff"},
		{"short hex darken", MustParse("#4af").Darken(20), "#0079dd"},
		{"grey lighten", MustParse("#808080").Lighten(20), "#b3b3b3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	c := MustNew(pink)
	c.Complement()
	c.Lighten(30)
	c.Negate()
	c.FadeOut(50)
	c.Gradient(MustParse("white"), 4)
	c.Harmony(Square, 0)

	if !c.Equals(MustNew(pink)) {
		t.Errorf("receiver changed to %s", c.RGBAString())
	}
}

func TestComplementTwice(t *testing.T) {
	c := MustNew(pink)
	if got := c.Complement().Complement(); !got.Equals(c) {
		t.Errorf("Complement().Complement() = %s, want %s", got.RGBAString(), c.RGBAString())
	}
}

func TestFade(t *testing.T) {
	c := MustNew(pink)

	if got := c.FadeIn(20).Alpha(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("FadeIn(20).Alpha() = %v, want 0.8", got)
	}
	if got := c.FadeOut(40).Alpha(); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("FadeOut(40).Alpha() = %v, want 0.2", got)
	}
	if got := c.FadeIn(100).Alpha(); got != 1 {
		t.Errorf("FadeIn(100).Alpha() = %v, want 1", got)
	}
	if got := c.FadeOut(100).Alpha(); got != 0 {
		t.Errorf("FadeOut(100).Alpha() = %v, want 0", got)
	}
}

func TestNaNPercentagesClamp(t *testing.T) {
	c := MustNew(pink)
	nan := math.NaN()

	for name, got := range map[string]*Color{
		"lighten":  c.Lighten(nan),
		"saturate": c.Saturate(nan),
		"fade":     c.FadeIn(nan),
		"mix":      c.Mix(MustParse("white"), nan),
		"inf":      c.Lighten(math.Inf(1)),
	} {
		if math.IsNaN(got.r) || math.IsNaN(got.g) || math.IsNaN(got.b) || math.IsNaN(got.a) {
			t.Errorf("%s produced NaN: %+v", name, got.rgba)
		}
		if got.Red() < 0 || got.Red() > 255 || got.Alpha() < 0 || got.Alpha() > 1 {
			t.Errorf("%s escaped range: %s", name, got.RGBAString())
		}
	}
}

func TestLuma(t *testing.T) {
	if got := MustNew(pink).Luma(); math.Abs(got-77.5) > 0.05 {
		t.Errorf("Luma() = %v, want ~77.5", got)
	}
	if got := MustParse("white").Luma(); math.Abs(got-255) > 1e-9 {
		t.Errorf("white Luma() = %v, want 255", got)
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		css  string
		dark bool
	}{
		{"black", true},
		{"white", false},
		{"#ff194b", true},
		{"#ffff00", false},
		{"#838383", true},
		{"#848484", false},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			c := MustParse(tt.css)
			if got := c.IsDark(); got != tt.dark {
				t.Errorf("IsDark() = %v, want %v", got, tt.dark)
			}
			if got := c.IsLight(); got == tt.dark {
				t.Errorf("IsLight() = %v, want %v", got, !tt.dark)
			}
		})
	}
}

func TestMix(t *testing.T) {
	black := MustParse("black")
	white := MustParse("white")

	if got := black.MixEven(white).Hex(); got != "#808080" {
		t.Errorf("MixEven() = %q, want #808080", got)
	}
	if got := black.Mix(white, 25).Hex(); got != "#404040" {
		t.Errorf("Mix(25) = %q, want #404040", got)
	}
	if got := black.Mix(white, 0).Hex(); got != "#000000" {
		t.Errorf("Mix(0) = %q, want #000000", got)
	}
	if got := black.Mix(white, 100).Hex(); got != "#ffffff" {
		t.Errorf("Mix(100) = %q, want #ffffff", got)
	}
	if got := black.Mix(nil, 50); !got.Equals(black) {
		t.Errorf("Mix(nil) = %s, want black", got)
	}

	faded := MustNew(RGBA{R: 0, G: 0, B: 0, A: 0}).MixEven(white)
	if faded.Alpha() != 0.5 {
		t.Errorf("mixed alpha = %v, want 0.5", faded.Alpha())
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"black", "white", 1},
		{"white", "black", 1},
		{"#ff194b", "#ff194b", 0},
		{"#ff194b", "black", 355.0 / 765},
	}

	for _, tt := range tests {
		if got := MustParse(tt.a).Contrast(MustParse(tt.b)); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Contrast(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if got := MustParse("black").Contrast(nil); got != 0 {
		t.Errorf("Contrast(nil) = %v, want 0", got)
	}
}

func TestGradient(t *testing.T) {
	got := MustParse("#000000").Gradient(MustParse("#505050"), 6).ToHex()
	want := []string{"#000000", "#101010", "#202020", "#303030", "#404040", "#505050"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Gradient() mismatch (-want +got):\n%s", diff)
	}

	short := MustParse("red").Gradient(MustParse("blue"), 1).ToHex()
	if diff := cmp.Diff([]string{"#ff0000", "#0000ff"}, short); diff != "" {
		t.Errorf("Gradient(n=1) mismatch (-want +got):\n%s", diff)
	}

	alpha := MustNew(RGBA{A: 0}).Gradient(MustNew(RGBA{A: 1}), 3)
	c, _ := alpha.Get(1)
	if c.Alpha() != 0.5 {
		t.Errorf("middle alpha = %v, want 0.5", c.Alpha())
	}
}

func TestHarmony(t *testing.T) {
	c := MustNew(RGB{R: 255, G: 25, B: 75})

	tests := []struct {
		scheme Scheme
		index  int
		want   []string
	}{
		{Complementary, 0, []string{"#ff194b", "#19ffcd"}},
		{Complementary, 1, []string{"#19ffcd", "#ff194b"}},
		{Analogous, 0, []string{"#ff194b", "#ff5a19", "#ffcd19"}},
		{Analogous, 1, []string{"#ff19be", "#ff194b", "#ff5a19"}},
		{Triad, 0, []string{"#ff194b", "#4bff19", "#194bff"}},
		{Triad, 1, []string{"#194bff", "#ff194b", "#4bff19"}},
		{Triad, -1, []string{"#194bff", "#ff194b", "#4bff19"}},
		{Triad, 4, []string{"#194bff", "#ff194b", "#4bff19"}},
		{Triad, 2, []string{"#4bff19", "#194bff", "#ff194b"}},
		{Triad, math.MinInt, []string{"#4bff19", "#194bff", "#ff194b"}},
		{Triad, math.MaxInt, []string{"#194bff", "#ff194b", "#4bff19"}},
		{SplitComplementary, 0, []string{"#ff194b", "#19ff5a", "#19beff"}},
		{Rectangle, 0, []string{"#ff194b", "#ffcd19", "#19ffcd", "#194bff"}},
		{Rectangle, 1, []string{"#cd19ff", "#ff194b", "#4bff19", "#19ffcd"}},
		{Square, 0, []string{"#ff194b", "#beff19", "#19ffcd", "#5a19ff"}},
		{Square, 1, []string{"#5a19ff", "#ff194b", "#beff19", "#19ffcd"}},
		{Scheme("unknown"), 0, []string{"#ff194b", "#19ffcd"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			got := c.Harmony(tt.scheme, tt.index).ToHex()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Harmony(%s, %d) mismatch (-want +got):\n%s", tt.scheme, tt.index, diff)
			}
		})
	}
}

func TestHarmonyKeepsAlpha(t *testing.T) {
	for _, c := range MustNew(pink).Harmony(Square, 0).Colors {
		if c.Alpha() != 0.6 {
			t.Errorf("harmony colour alpha = %v, want 0.6", c.Alpha())
		}
	}
}

func TestSchemes(t *testing.T) {
	for _, s := range Schemes() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
		if s.Offsets()[0] != 0 {
			t.Errorf("%s offsets should start at 0", s)
		}
	}
	if Scheme("nope").Valid() {
		t.Error("unknown scheme should not be valid")
	}
}

func TestRandomColorRange(t *testing.T) {
	var seed [32]byte
	seed[0] = 42
	rng := rand.New(rand.NewChaCha8(seed))

	c := MustNew(pink)
	base := c.Lightness()
	for range 50 {
		got := c.RandomColorRangeRand(rng, 20).Lightness()
		if got < base-0.2-1e-9 || got > base+0.2+1e-9 {
			t.Fatalf("lightness %v outside [%v, %v]", got, base-0.2, base+0.2)
		}
	}

	for range 20 {
		got := c.RandomColorRange(10).Lightness()
		if got < base-0.1-1e-9 || got > base+0.1+1e-9 {
			t.Fatalf("lightness %v outside [%v, %v]", got, base-0.1, base+0.1)
		}
	}
}
