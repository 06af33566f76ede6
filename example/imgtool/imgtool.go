// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command imgtool demonstrates a fixed argument schema: two positional
// arguments, one valued flag, and one switch.
package main

import (
	"fmt"
	"os"

	"github.com/easyargs/easyargs/pkg/easyargs"
)

var schema = easyargs.MustNew(
	easyargs.Descriptor{Kind: easyargs.Required, Name: "in", Type: easyargs.String,
		Label: "input", Help: "Input image file"},
	easyargs.Descriptor{Kind: easyargs.Required, Name: "contrast", Type: easyargs.Double,
		Help: "Contrast applied to the image"},
	easyargs.Descriptor{Kind: easyargs.Optional, Name: "gamma", Type: easyargs.Double,
		Flag: "--gamma", Default: 2.2, Format: "%.1f", Help: "Gamma correction"},
	easyargs.Descriptor{Kind: easyargs.Boolean, Name: "verbose",
		Flag: "--verbose", Help: "Print progress while processing"},
)

func main() {
	args, err := schema.Scan(os.Args)
	if err != nil {
		schema.FprintHelp(os.Stderr, os.Args[0])
		os.Exit(1)
	}

	if args.Bool("verbose") {
		fmt.Fprintf(os.Stderr, "processing %s\n", args.String("in"))
	}
	fmt.Printf("in=%s contrast=%g gamma=%g\n",
		args.String("in"), args.Double("contrast"), args.Double("gamma"))
}
