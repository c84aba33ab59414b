// Spectra - A colour conversion and manipulation tool
//
// Spectra converts colours between RGB, HSV, HSL, CIE Lab and CSS forms
// and derives new colours from them.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/spectra/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
