package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		alpha float64
	}{
		{"short hex", "#4Af", "#44aaff", 1},
		{"short hex lower", "#fff", "#ffffff", 1},
		{"long hex", "#FF194b", "#ff194b", 1},
		{"rgb", "rgb(255,25, 75)", "#ff194b", 1},
		{"rgb spaced", "rgb( 255 , 25 , 75 )", "#ff194b", 1},
		{"rgb upper", "RGB(255,25,75)", "#ff194b", 1},
		{"rgb out of range", "rgb(300,25,75)", "#ff194b", 1},
		{"rgba", "rgba(255,25, 75, 0.6)", "#ff194b", 0.6},
		{"rgba leading dot", "rgba(255,25, 75, .6)", "#ff194b", 0.6},
		{"rgba clamps alpha", "rgba(255,25,75,3)", "#ff194b", 1},
		{"named", "black", "#000000", 1},
		{"named mixed case", "AliceBlue", "#f0f8ff", 1},
		{"named trimmed", "  white ", "#ffffff", 1},
		{"transparent", "transparent", "#000000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Parse(%q).Hex() = %q, want %q", tt.input, got, tt.want)
			}
			if got := c.Alpha(); got != tt.alpha {
				t.Errorf("Parse(%q).Alpha() = %v, want %v", tt.input, got, tt.alpha)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"not a real color",
		"#deadbeef",
		"#12",
		"#ggg",
		"",
		"rgb(1,2)",
		"rgb(1.5,2,3)",
		"rgba(1,2,3)",
		"hsl(1,2,3)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if !errors.Is(err, ErrUnparseable) {
				t.Fatalf("Parse(%q) error = %v, want ErrUnparseable", input, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Input != input {
				t.Errorf("Parse(%q) error does not carry the input: %v", input, err)
			}
			if !strings.Contains(err.Error(), "not a valid CSS colour string") {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestLookupName(t *testing.T) {
	c, ok := LookupName("DarkSlateGray")
	if !ok || c.Hex() != "#2f4f4f" {
		t.Errorf("LookupName(DarkSlateGray) = %v, %v, want #2f4f4f", c, ok)
	}

	if _, ok := LookupName("no-such-colour"); ok {
		t.Error("LookupName(no-such-colour) should fail")
	}

	if n := len(Names()); n != 147 {
		t.Errorf("len(Names()) = %d, want 147", n)
	}
}
