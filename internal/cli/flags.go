package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of choices.
type enumValue struct {
	value   string
	choices []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(def string, choices ...string) *enumValue {
	return &enumValue{value: def, choices: choices}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(e.choices, ", "))
	}
	e.value = s
	return nil
}

func (e *enumValue) Type() string { return "string" }

// setIfUnchanged applies def unless the user passed the flag.
func setIfUnchanged(flags *pflag.FlagSet, name, def string) {
	if f := flags.Lookup(name); f != nil && !f.Changed {
		_ = f.Value.Set(def)
	}
}
