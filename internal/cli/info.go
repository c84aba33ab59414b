package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/spectra/pkg/colour"
)

// infoReport is the structured form of the info command.
type infoReport struct {
	Hex       string  `json:"hex" yaml:"hex"`
	RGBA      string  `json:"rgba" yaml:"rgba"`
	HSL       string  `json:"hsl" yaml:"hsl"`
	HSV       string  `json:"hsv" yaml:"hsv"`
	Lab       string  `json:"lab" yaml:"lab"`
	Number    int     `json:"number" yaml:"number"`
	Luma      float64 `json:"luma" yaml:"luma"`
	Dark      bool    `json:"dark" yaml:"dark"`
	Alpha     float64 `json:"alpha" yaml:"alpha"`
	Negate    string  `json:"negate" yaml:"negate"`
	Grayscale string  `json:"grayscale" yaml:"grayscale"`
}

func newInfoReport(c *colour.Color) infoReport {
	return infoReport{
		Hex:       c.Hex(),
		RGBA:      c.RGBAString(),
		HSL:       c.HSLAString(),
		HSV:       c.HSVString(),
		Lab:       c.LabString(),
		Number:    c.RGBNumber(),
		Luma:      c.Luma(),
		Dark:      c.IsDark(),
		Alpha:     c.Alpha(),
		Negate:    c.Negate().Hex(),
		Grayscale: c.Grayscale().Hex(),
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <colour>",
		Short: "Show a colour in every supported model",
		Long: `Show a colour as hex, rgba, hsl, hsv and Lab, with its packed RGB
number, luma and light/dark classification.

Examples:
  spectra info '#4af'
  spectra info 'rgba(255,25,75,.6)' --format json
  spectra info h=347,s=0.9,v=1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", args[0], err)
			}
			a.logger.Debug("parsed colour", "input", args[0], "rgba", c.RGBAString())
			return a.writeInfo(cmd, newInfoReport(c), c)
		},
	}
}

func (a *app) writeInfo(cmd *cobra.Command, report infoReport, c *colour.Color) error {
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

	class := "light"
	if report.Dark {
		class = "dark"
	}

	table := NewTable([]string{"Model", "Value"})
	if a.preview(out) {
		table.AddRow("preview", colour.SwatchWithText(c, class, a.cfg.PreviewWidth))
	}
	table.AddRow("hex", report.Hex)
	table.AddRow("rgba", report.RGBA)
	table.AddRow("hsl", report.HSL)
	table.AddRow("hsv", report.HSV)
	table.AddRow("lab", report.Lab)
	table.AddRow("number", strconv.Itoa(report.Number))
	table.AddRow("luma", strconv.FormatFloat(report.Luma, 'f', 2, 64))
	table.AddRow("class", class)
	table.AddRow("negate", report.Negate)
	table.AddRow("grayscale", report.Grayscale)

	_, err := fmt.Fprint(out, table.Render())
	return err
}
