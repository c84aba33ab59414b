package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/spectra/pkg/colour"
)

// parseColourArg parses a CSS colour or a "k=v,k=v" field list such as
// "h=347,s=0.9,v=1".
func parseColourArg(arg string) (*colour.Color, error) {
	if !strings.Contains(arg, "=") {
		return colour.Parse(arg)
	}

	fields := colour.Fields{}
	for _, pair := range strings.Split(arg, ",") {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not key=value", colour.ErrInvalidDescriptor, pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", colour.ErrInvalidDescriptor, key, err)
		}
		fields[strings.TrimSpace(key)] = v
	}
	return colour.New(fields)
}

// parseColourArgs parses every argument, naming the first failure.
func parseColourArgs(args []string) ([]*colour.Color, error) {
	colors := make([]*colour.Color, len(args))
	for i, arg := range args {
		c, err := parseColourArg(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q: %w", arg, err)
		}
		colors[i] = c
	}
	return colors, nil
}
