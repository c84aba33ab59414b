package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/spectra/internal/config"
	"github.com/jmylchreest/spectra/internal/version"
)

// app carries state shared by every command of one invocation.
type app struct {
	cfg        config.Config
	logger     hclog.Logger
	configPath string
	verbose    bool
	quiet      bool
	noPreview  bool
	format     *enumValue
}

// NewRootCmd builds the spectra command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
		format: newEnumValue("hex", config.Formats...),
	}

	rootCmd := &cobra.Command{
		Use:   "spectra",
		Short: "A colour conversion and manipulation tool",
		Long: `Spectra converts colours between RGB, HSV, HSL, CIE Lab and CSS forms,
and derives new colours from them: lighten, darken, mix, gradients and
hue harmonies.

Colours are given as CSS strings (#4af, #ff194b, rgb(255,25,75),
rgba(255,25,75,.6), navy) or as field lists (h=347,s=0.9,v=1).`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().VarP(a.format, "format", "f", "output format (hex, rgb, hsl, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.noPreview, "no-preview", false, "disable terminal colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInfoCmd(a),
		newConvertCmd(a),
		newAdjustCmd(a),
		newMixCmd(a),
		newGradientCmd(a),
		newHarmonyCmd(a),
		newContrastCmd(a),
		newRandomCmd(a),
		newNamesCmd(a),
	)
	return rootCmd
}

// setup loads configuration, applies global flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	setIfUnchanged(cmd.Flags(), "format", cfg.Format)
	cfg.Format = a.format.String()
	if a.noPreview {
		cfg.Preview = false
	}
	a.cfg = cfg

	level := hclog.LevelFromString(cfg.LogLevel)
	switch {
	case a.quiet:
		level = hclog.Off
	case a.verbose:
		level = hclog.Debug
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "spectra",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})
	a.logger.Debug("configuration loaded", "path", a.configPath, "format", cfg.Format, "preview", cfg.Preview)
	return nil
}

// newVersionCmd prints build information.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
