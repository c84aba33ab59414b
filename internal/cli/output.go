package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jmylchreest/spectra/pkg/colour"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// preview reports whether swatches should be drawn on w.
func (a *app) preview(w io.Writer) bool {
	return a.cfg.Preview && isTerminal(w)
}

// formatColour renders one colour as a line in the text formats.
func (a *app) formatColour(c *colour.Color) string {
	switch a.cfg.Format {
	case "rgb":
		return c.RGBAString()
	case "hsl":
		return c.HSLAString()
	default:
		return c.Hex()
	}
}

// writePalette writes every colour of p in the configured format.
func (a *app) writePalette(w io.Writer, p *colour.Palette) error {
	switch a.cfg.Format {
	case "json":
		data, err := p.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := p.ToYAML()
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	showPreview := a.preview(w)
	for _, c := range p.All() {
		line := a.formatColour(c)
		if showPreview {
			line = colour.FormatWithPreview(c, line, a.cfg.PreviewWidth)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeColour writes a single colour.
func (a *app) writeColour(w io.Writer, c *colour.Color) error {
	return a.writePalette(w, colour.NewPalette([]*colour.Color{c}))
}
