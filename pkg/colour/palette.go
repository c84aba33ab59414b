package colour

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Palette is an ordered collection of colours, as produced by Gradient and
// Harmony.
type Palette struct {
	Colors []*Color
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []*Color) *Palette {
	return &Palette{
		Colors: colors,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (*Color, error) {
	if index < 0 || index >= len(p.Colors) {
		return nil, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, *Color) bool) {
	return func(yield func(int, *Color) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// PaletteJSON represents the palette in JSON and YAML output.
type PaletteJSON struct {
	Count  int      `json:"count" yaml:"count"`
	Colors []*Color `json:"colors" yaml:"colors"`
}

func (p *Palette) document() PaletteJSON {
	return PaletteJSON{Count: len(p.Colors), Colors: p.Colors}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.document(), "", "  ")
}

// ToYAML converts the palette to YAML.
func (p *Palette) ToYAML() ([]byte, error) {
	return yaml.Marshal(p.document())
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		fmt.Fprintf(&sb, "  %2d: %s (%s)\n", i+1, c.Hex(), c.RGBAString())
	}
	return sb.String()
}
