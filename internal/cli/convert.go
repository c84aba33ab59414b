package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/spectra/pkg/colour"
)

// conversions maps --to targets to their string form.
var conversions = map[string]func(*colour.Color) string{
	"hex":    (*colour.Color).Hex,
	"rgba":   (*colour.Color).RGBAString,
	"hsl":    (*colour.Color).HSLString,
	"hsla":   (*colour.Color).HSLAString,
	"hsv":    (*colour.Color).HSVString,
	"lab":    (*colour.Color).LabString,
	"number": func(c *colour.Color) string { return strconv.Itoa(c.RGBNumber()) },
}

func newConvertCmd(a *app) *cobra.Command {
	to := newEnumValue("hex", "hex", "rgba", "hsl", "hsla", "hsv", "lab", "number")

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours to another representation",
		Long: `Convert one or more colours to hex, rgba, hsl, hsla, hsv, lab or a
packed RGB number.

Examples:
  spectra convert '#4af' --to hsl
  spectra convert navy 'rgb(255,25,75)' --to number
  spectra convert L=54.5,a=79.5,b=35.3 --to hex`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColourArgs(args)
			if err != nil {
				return err
			}
			convert := conversions[to.String()]
			for _, c := range colors {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), convert(c)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Var(to, "to", "target representation (hex, rgba, hsl, hsla, hsv, lab, number)")
	return cmd
}

// adjustOptions holds the adjust command flags.
type adjustOptions struct {
	sets       []string
	lighten    float64
	darken     float64
	saturate   float64
	desaturate float64
	fadeIn     float64
	fadeOut    float64
	complement bool
	negate     bool
	grayscale  bool
}

// setters maps --set channel names to Color setters.
var setters = map[string]func(*colour.Color, float64) *colour.Color{
	"red":                  (*colour.Color).SetRed,
	"green":                (*colour.Color).SetGreen,
	"blue":                 (*colour.Color).SetBlue,
	"alpha":                (*colour.Color).SetAlpha,
	"hue":                  (*colour.Color).SetHue,
	"saturation-value":     (*colour.Color).SetSaturationValue,
	"value":                (*colour.Color).SetValue,
	"saturation-lightness": (*colour.Color).SetSaturationLightness,
	"lightness":            (*colour.Color).SetLightness,
}

func newAdjustCmd(a *app) *cobra.Command {
	opts := &adjustOptions{}

	cmd := &cobra.Command{
		Use:   "adjust <colour>",
		Short: "Set channels and apply adjustments to a colour",
		Long: `Set individual channels, then apply adjustments in this order:
lighten, darken, saturate, desaturate, fade-in, fade-out, complement,
negate, grayscale. Percentages are percentage points.

Examples:
  spectra adjust '#ff194b' --lighten 10
  spectra adjust navy --set hue=200 --set alpha=0.5 --format rgb
  spectra adjust '#4af' --complement --desaturate 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", args[0], err)
			}
			c, err = opts.apply(a, c)
			if err != nil {
				return err
			}
			return a.writeColour(cmd.OutOrStdout(), c)
		},
	}

	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "set a channel, e.g. hue=120 (red, green, blue, alpha, hue, saturation-value, value, saturation-lightness, lightness)")
	cmd.Flags().Float64Var(&opts.lighten, "lighten", 0, "raise HSL lightness by this many percentage points")
	cmd.Flags().Float64Var(&opts.darken, "darken", 0, "lower HSL lightness by this many percentage points")
	cmd.Flags().Float64Var(&opts.saturate, "saturate", 0, "raise HSL saturation by this many percentage points")
	cmd.Flags().Float64Var(&opts.desaturate, "desaturate", 0, "lower HSL saturation by this many percentage points")
	cmd.Flags().Float64Var(&opts.fadeIn, "fade-in", 0, "raise alpha by this many percentage points")
	cmd.Flags().Float64Var(&opts.fadeOut, "fade-out", 0, "lower alpha by this many percentage points")
	cmd.Flags().BoolVar(&opts.complement, "complement", false, "rotate the hue by 180 degrees")
	cmd.Flags().BoolVar(&opts.negate, "negate", false, "invert every RGB channel")
	cmd.Flags().BoolVar(&opts.grayscale, "grayscale", false, "remove all saturation")
	return cmd
}

// apply runs the setters and adjustments in their documented order.
func (o *adjustOptions) apply(a *app, c *colour.Color) (*colour.Color, error) {
	for _, set := range o.sets {
		name, raw, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: want name=value", set)
		}
		setter, ok := setters[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: unknown channel %q", set, name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", set, err)
		}
		setter(c, v)
		a.logger.Debug("set channel", "channel", name, "value", v, "result", c.RGBAString())
	}

	steps := []struct {
		name   string
		active bool
		op     func(*colour.Color) *colour.Color
	}{
		{"lighten", o.lighten != 0, func(c *colour.Color) *colour.Color { return c.Lighten(o.lighten) }},
		{"darken", o.darken != 0, func(c *colour.Color) *colour.Color { return c.Darken(o.darken) }},
		{"saturate", o.saturate != 0, func(c *colour.Color) *colour.Color { return c.Saturate(o.saturate) }},
		{"desaturate", o.desaturate != 0, func(c *colour.Color) *colour.Color { return c.Desaturate(o.desaturate) }},
		{"fade-in", o.fadeIn != 0, func(c *colour.Color) *colour.Color { return c.FadeIn(o.fadeIn) }},
		{"fade-out", o.fadeOut != 0, func(c *colour.Color) *colour.Color { return c.FadeOut(o.fadeOut) }},
		{"complement", o.complement, (*colour.Color).Complement},
		{"negate", o.negate, (*colour.Color).Negate},
		{"grayscale", o.grayscale, (*colour.Color).Grayscale},
	}

	for _, step := range steps {
		if !step.active {
			continue
		}
		c = step.op(c)
		a.logger.Debug("applied adjustment", "step", step.name, "result", c.RGBAString())
	}
	return c, nil
}
