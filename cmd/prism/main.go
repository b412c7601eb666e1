// Prism - colour conversion and WCAG contrast calculations
//
// Prism converts colours between encodings and computes WCAG
// luminance, contrast ratios and minimal contrast adjustments.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/prism/internal/cli"
)

func main() {
	cli.Execute()
}
