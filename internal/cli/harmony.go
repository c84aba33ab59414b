package cli

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/spectra/pkg/colour"
)

func newHarmonyCmd(a *app) *cobra.Command {
	names := make([]string, 0, len(colour.Schemes()))
	for _, s := range colour.Schemes() {
		names = append(names, string(s))
	}
	scheme := newEnumValue(string(colour.Complementary), names...)
	var index int

	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Generate a hue harmony around a colour",
		Long: fmt.Sprintf(`Rotate the hue of a colour through a fixed scheme of offsets, keeping its
saturation, value and alpha. --index picks which position of the scheme the
input colour occupies. --scheme defaults to harmony_scheme from the config
file.

Schemes: %s

Examples:
  spectra harmony '#ff194b' --scheme triad
  spectra harmony '#4af' --scheme square --index 2 --format hsl`, strings.Join(names, ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", args[0], err)
			}
			setIfUnchanged(cmd.Flags(), "scheme", string(a.cfg.HarmonyScheme))
			s := colour.Scheme(scheme.String())
			a.logger.Debug("building harmony", "colour", c.Hex(), "scheme", s, "index", index)
			return a.writePalette(cmd.OutOrStdout(), c.Harmony(s, index))
		},
	}

	cmd.Flags().Var(scheme, "scheme", "harmony scheme ("+strings.Join(names, ", ")+")")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "position of the input colour within the scheme")
	return cmd
}

// newRNG returns a ChaCha8 generator. A zero seed draws one from crypto/rand.
func newRNG(seed uint64) *mathrand.Rand {
	if seed == 0 {
		var randomBytes [8]byte
		if _, err := rand.Read(randomBytes[:]); err == nil {
			seed = binary.LittleEndian.Uint64(randomBytes[:])
		}
	}

	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	return mathrand.New(mathrand.NewChaCha8(seedArray))
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		spread float64
		count  int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "random <colour>",
		Short: "Randomly lighten or darken a colour",
		Long: `Produce colours whose HSL lightness is shifted by a uniformly random
amount within +/- --range percentage points. A non-zero --seed makes the
output reproducible.

Examples:
  spectra random '#ff194b' --range 20 --count 5
  spectra random navy --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", args[0], err)
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			rng := newRNG(seed)
			colors := make([]*colour.Color, count)
			for i := range colors {
				colors[i] = c.RandomColorRangeRand(rng, spread)
			}
			a.logger.Debug("generated random colours", "colour", c.Hex(), "range", spread, "count", count, "seed", seed)
			return a.writePalette(cmd.OutOrStdout(), colour.NewPalette(colors))
		},
	}

	cmd.Flags().Float64VarP(&spread, "range", "r", 10, "maximum lightness shift in percentage points")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of colours to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one at random)")
	return cmd
}

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the named CSS colours",
		Long: `List every named colour accepted as input, with its hex value.

Examples:
  spectra names
  spectra names --no-preview | grep gray`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			showPreview := a.preview(out)

			table := NewTable([]string{"Name", "Hex"})
			for _, name := range colour.Names() {
				c, ok := colour.LookupName(name)
				if !ok {
					continue
				}
				hex := c.Hex()
				if showPreview {
					hex = colour.FormatWithPreview(c, hex, a.cfg.PreviewWidth)
				}
				table.AddRow(name, hex)
			}

			_, err := fmt.Fprint(out, table.Render())
			return err
		},
	}
}
