// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structbind

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/easyargs/easyargs/pkg/easyargs"
)

type imageFlags struct {
	In       string  `pos:"0" label:"input" help:"Input file"`
	Contrast float64 `pos:"1" help:"Contrast factor"`
	Gamma    float32 `flag:"gamma" default:"2.2" help:"Gamma correction"`
	Threads  uint    `flag:"threads" default:"1" help:"Worker threads"`
	Verbose  bool    `flag:"verbose" help:"Verbose output"`
}

func TestDerive(t *testing.T) {
	schema, err := Derive(imageFlags{})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	req := schema.Required()
	if len(req) != 2 {
		t.Fatalf("Required() has %d entries, want 2", len(req))
	}
	if req[0].Name != "in" || req[0].Type != easyargs.String || req[0].Label != "input" {
		t.Errorf("req[0] = %+v, want in/string/input", req[0])
	}
	if req[1].Name != "contrast" || req[1].Type != easyargs.Double {
		t.Errorf("req[1] = %+v, want contrast/double", req[1])
	}

	opt := schema.Optional()
	if len(opt) != 2 {
		t.Fatalf("Optional() has %d entries, want 2", len(opt))
	}
	if opt[0].Flag != "--gamma" || opt[0].Default != float32(2.2) {
		t.Errorf("opt[0] = %+v, want --gamma default 2.2", opt[0])
	}
	if opt[1].Flag != "--threads" || opt[1].Default != uint(1) {
		t.Errorf("opt[1] = %+v, want --threads default 1", opt[1])
	}

	boolean := schema.Boolean()
	if len(boolean) != 1 || boolean[0].Flag != "--verbose" {
		t.Errorf("Boolean() = %v, want one --verbose switch", boolean)
	}
}

func TestDerive_PositionOrder(t *testing.T) {
	type reordered struct {
		B string `pos:"1"`
		A string `pos:"0"`
	}
	schema, err := Derive(reordered{})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	req := schema.Required()
	if req[0].Name != "a" || req[1].Name != "b" {
		t.Errorf("Required() order = %s,%s; want a,b", req[0].Name, req[1].Name)
	}
}

func TestDerive_Errors(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		wantErr string
	}{
		{name: "not a struct", v: 42, wantErr: "not a struct"},
		{
			name: "both tags",
			v: struct {
				X string `pos:"0" flag:"x"`
			}{},
			wantErr: "both pos and flag",
		},
		{
			name: "bad pos tag",
			v: struct {
				X string `pos:"first"`
			}{},
			wantErr: "invalid pos tag",
		},
		{
			name: "unsupported type",
			v: struct {
				X []string `flag:"x"`
			}{},
			wantErr: "unsupported type",
		},
		{
			name: "bool default",
			v: struct {
				X bool `flag:"x" default:"true"`
			}{},
			wantErr: "cannot take a default",
		},
		{
			name: "bad default",
			v: struct {
				X int32 `flag:"x" default:"many"`
			}{},
			wantErr: "bad default",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.v)
			if err == nil {
				t.Fatalf("Derive() succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Derive() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	var got imageFlags
	schema, err := Derive(&got)
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	schema.SetOutput(&bytes.Buffer{})

	args, err := schema.Scan([]string{"imgtool", "in.png", "1.5", "--gamma", "1.8", "--verbose"})
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if err := Bind(&got, args); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	want := imageFlags{
		In:       "in.png",
		Contrast: 1.5,
		Gamma:    1.8,
		Threads:  1,
		Verbose:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bound struct mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_DefaultsOnly(t *testing.T) {
	var got imageFlags
	if err := Parse(&got, []string{"imgtool", "x.png", "1.0"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Gamma != 2.2 || got.Threads != 1 || got.Verbose {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestBind_RejectsNonPointer(t *testing.T) {
	schema, err := Derive(imageFlags{})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}
	if err := Bind(imageFlags{}, schema.Defaults()); err == nil {
		t.Error("Bind(non-pointer) succeeded, want error")
	}
}
