package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns a solid block of width cells in colour c.
func Swatch(c *Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText returns a swatch with text centred over it. The text is
// white on dark colours and black on light ones.
func SwatchWithText(c *Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := "255;255;255"
	if c.IsLight() {
		fg = "0;0;0"
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return background(c) + ansiFgPrefix + fg + ansiSuffix + displayText + ansiReset
}

// FormatWithPreview formats a colour as its swatch followed by text.
func FormatWithPreview(c *Color, text string, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), text)
}

func background(c *Color) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.Red(), c.Green(), c.Blue(), ansiSuffix)
}
