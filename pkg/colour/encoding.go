package colour

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// colorDocument is the serialised form of a Color.
type colorDocument struct {
	Hex   string  `json:"hex" yaml:"hex"`
	RGB   rgbJSON `json:"rgb" yaml:"rgb"`
	Alpha float64 `json:"alpha" yaml:"alpha"`
}

type rgbJSON struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

func (c *Color) document() colorDocument {
	return colorDocument{
		Hex:   c.Hex(),
		RGB:   rgbJSON{R: c.Red(), G: c.Green(), B: c.Blue()},
		Alpha: c.a,
	}
}

// MarshalJSON encodes c as {"hex", "rgb", "alpha"}.
func (c *Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.document())
}

// UnmarshalJSON accepts a CSS string, an encoded Color, or a Fields object.
func (c *Color) UnmarshalJSON(data []byte) error {
	var css string
	if err := json.Unmarshal(data, &css); err == nil {
		return c.decodeCSS(css)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	return c.decodeMap(raw)
}

// MarshalYAML encodes c as a mapping with hex, rgb and alpha.
func (c *Color) MarshalYAML() (any, error) {
	return c.document(), nil
}

// UnmarshalYAML accepts a CSS scalar, an encoded Color, or a Fields mapping.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return c.decodeCSS(value.Value)
	}

	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	return c.decodeMap(raw)
}

func (c *Color) decodeCSS(css string) error {
	v, err := Parse(css)
	if err != nil {
		return err
	}
	*c = *v
	return nil
}

// decodeMap handles both the encoded {hex, alpha} form and plain Fields.
func (c *Color) decodeMap(raw map[string]any) error {
	if hex, ok := raw["hex"].(string); ok {
		v, err := Parse(hex)
		if err != nil {
			return err
		}
		if alpha, ok := number(raw["alpha"]); ok {
			v.SetAlpha(alpha)
		}
		*c = *v
		return nil
	}

	fields := make(Fields, len(raw))
	for k, val := range raw {
		n, ok := number(val)
		if !ok {
			return fmt.Errorf("%w: field %q is not a number", ErrInvalidDescriptor, k)
		}
		fields[k] = n
	}
	v, err := New(fields)
	if err != nil {
		return err
	}
	*c = *v
	return nil
}

// number converts decoded JSON and YAML numerics to float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
