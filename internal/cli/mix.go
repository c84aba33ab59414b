package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newMixCmd(a *app) *cobra.Command {
	var percent float64

	cmd := &cobra.Command{
		Use:   "mix <colour> <colour>",
		Short: "Blend two colours",
		Long: `Blend two colours channel by channel, alpha included. --percent is how
far to move from the first colour towards the second, clamped to 0-100.

Examples:
  spectra mix '#ff194b' '#4af'
  spectra mix red blue --percent 25 --format rgb`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColourArgs(args)
			if err != nil {
				return err
			}
			mixed := colors[0].Mix(colors[1], percent)
			a.logger.Debug("mixed colours", "first", colors[0].Hex(), "second", colors[1].Hex(), "percent", percent)
			return a.writeColour(cmd.OutOrStdout(), mixed)
		},
	}

	cmd.Flags().Float64VarP(&percent, "percent", "p", 50, "distance towards the second colour in percent")
	return cmd
}

func newGradientCmd(a *app) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "gradient <from> <to>",
		Short: "Interpolate evenly between two colours",
		Long: `Produce a gradient of evenly spaced colours from the first colour to the
second, both included. --steps defaults to gradient_steps from the config
file; values below 2 produce just the two endpoints.

Examples:
  spectra gradient '#ff194b' '#4af'
  spectra gradient black white --steps 9 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColourArgs(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.GradientSteps
			}
			a.logger.Debug("building gradient", "from", colors[0].Hex(), "to", colors[1].Hex(), "steps", steps)
			return a.writePalette(cmd.OutOrStdout(), colors[0].Gradient(colors[1], steps))
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 5, "number of colours including both endpoints")
	return cmd
}

// contrastReport is the structured form of the contrast command.
type contrastReport struct {
	First    string  `json:"first" yaml:"first"`
	Second   string  `json:"second" yaml:"second"`
	Contrast float64 `json:"contrast" yaml:"contrast"`
	Equal    bool    `json:"equal" yaml:"equal"`
	Near     bool    `json:"near" yaml:"near"`
}

func newContrastCmd(a *app) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "contrast <colour> <colour>",
		Short: "Compare two colours",
		Long: `Report the RGB contrast between two colours (0 for identical, 1 for
black against white) and whether they are equal or near each other within
--tolerance percent.

Examples:
  spectra contrast black white
  spectra contrast '#ff194b' '#fe1a4c' --tolerance 1 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := parseColourArgs(args)
			if err != nil {
				return err
			}
			report := contrastReport{
				First:    colors[0].String(),
				Second:   colors[1].String(),
				Contrast: colors[0].Contrast(colors[1]),
				Equal:    colors[0].Equals(colors[1]),
				Near:     colors[0].Near(colors[1], tolerance),
			}
			return a.writeContrast(cmd, report)
		},
	}

	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 1, "per-channel tolerance in percent for the near check")
	return cmd
}

func (a *app) writeContrast(cmd *cobra.Command, report contrastReport) error {
	out := cmd.OutOrStdout()

	switch a.cfg.Format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	table := NewTable([]string{"Check", "Result"})
	table.AddRow("first", report.First)
	table.AddRow("second", report.Second)
	table.AddRow("contrast", strconv.FormatFloat(report.Contrast, 'f', 4, 64))
	table.AddRow("equal", strconv.FormatBool(report.Equal))
	table.AddRow("near", strconv.FormatBool(report.Near))

	_, err := fmt.Fprint(out, table.Render())
	return err
}
