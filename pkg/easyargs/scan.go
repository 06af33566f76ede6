// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easyargs

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

// ErrNoArgs is returned when Scan is handed a nil or empty argument vector.
// That is a caller bug, not user input: even an argumentless invocation
// carries the program name at index 0.
var ErrNoArgs = errors.New("internal error: empty argument vector")

// ArityError is returned when fewer positional arguments are supplied than
// the schema requires.
type ArityError struct {
	Required int
	Got      int
}

func (e *ArityError) Error() string { return "not all required arguments included" }

// MissingValueError is returned when an Optional flag appears as the last
// token, with no value following it.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option '%s' requires a value", e.Flag)
}

// Scan consumes argv (including the program name at index 0) against the
// schema and returns the populated Args.
//
// Required descriptors each bind one token, in schema order. Remaining
// tokens are matched against Optional and Boolean flag tokens; an Optional
// match parses the following token as its value, a Boolean match sets the
// field true, and an unmatched token is reported as a warning and skipped.
//
// The first hard error (arity, value, missing flag value) aborts the scan.
// Every hard error and warning is also written to the schema's diagnostic
// output as a single line. On error the returned Args may be partially
// populated and its contents are unspecified.
func (s *Schema) Scan(argv []string) (*Args, error) {
	args := s.Defaults()

	if len(argv) == 0 {
		s.errorf("%v", ErrNoArgs)
		return args, ErrNoArgs
	}
	if len(argv)-1 < len(s.required) {
		err := &ArityError{Required: len(s.required), Got: len(argv) - 1}
		s.errorf("%v", err)
		return args, err
	}

	i := 1
	for _, d := range s.required {
		v, err := ParseValue(d.Type, argv[i])
		if err != nil {
			s.errorf("%v", err)
			return args, err
		}
		args.set(d.Name, v)
		i++
	}

	for ; i < len(argv); i++ {
		tok := argv[i]
		d, ok := s.byFlag[tok]
		if !ok {
			s.warnf("ignoring unrecognized argument '%s'", tok)
			continue
		}
		if d.Kind == Boolean {
			args.set(d.Name, true)
			continue
		}
		if i+1 >= len(argv) {
			err := &MissingValueError{Flag: tok}
			s.errorf("%v", err)
			return args, err
		}
		i++
		v, err := ParseValue(d.Type, argv[i])
		if err != nil {
			s.errorf("%v", err)
			return args, err
		}
		args.set(d.Name, v)
	}

	return args, nil
}

func (s *Schema) errorf(format string, a ...any) {
	fmt.Fprintln(s.out, color.RedString("%s", "Error: "+fmt.Sprintf(format, a...)))
}

func (s *Schema) warnf(format string, a ...any) {
	fmt.Fprintln(s.out, color.YellowString("%s", "Warning: "+fmt.Sprintf(format, a...)))
}
