// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package easyargs is a declarative command-line argument parser for
// programs with small, fixed argument schemas.
//
// A schema is an ordered list of required positional descriptors followed by
// optional flag descriptors (which consume one value token) and boolean
// switch descriptors (presence-only). Scanning argv against the schema
// yields a typed Args container; the same schema drives default
// initialization and help-text rendering.
//
//	schema := easyargs.MustNew(
//	    easyargs.Descriptor{Kind: easyargs.Required, Name: "count", Type: easyargs.Int, Help: "Number of items"},
//	    easyargs.Descriptor{Kind: easyargs.Optional, Name: "rate", Type: easyargs.Float,
//	        Flag: "--rate", Default: float32(1.0), Help: "Sampling rate"},
//	    easyargs.Descriptor{Kind: easyargs.Boolean, Name: "verbose", Flag: "--verbose", Help: "Verbose output"},
//	)
//
//	args, err := schema.Scan(os.Args)
//	if err != nil {
//	    schema.FprintHelp(os.Stderr, os.Args[0])
//	    os.Exit(1)
//	}
//	fmt.Println(args.Int("count"), args.Float("rate"), args.Bool("verbose"))
//
// # Parsing rules
//
// Required arguments bind strictly by position, one argv token each, in
// schema order. The remaining tokens are matched against flag tokens by
// exact string comparison; flag order on the command line is irrelevant.
// Unrecognized tokens are warned about and skipped, never a hard error.
// Integer values accept decimal, octal (0 prefix), and hexadecimal (0x
// prefix) numerals; unsigned types reject negative input outright.
//
// The first hard error aborts the scan. Diagnostics go to os.Stderr (see
// Schema.SetOutput) as single human-readable lines; the error returned to
// the caller carries the same message.
//
// Schemas can also be derived from tagged structs (package structbind) or
// loaded from TOML/YAML documents (package schemafile).
package easyargs
