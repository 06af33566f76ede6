// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easyargs

import (
	"fmt"
	"io"
	"os"
)

// Kind classifies how an argument is identified on the command line.
type Kind int

const (
	// Required arguments are identified by position; they carry no flag.
	Required Kind = iota
	// Optional arguments are identified by an exact flag token and consume
	// one following value token.
	Optional
	// Boolean arguments are identified by an exact flag token; presence
	// alone sets them true.
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Boolean:
		return "boolean"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ValueType identifies the scalar type an argument's raw text is parsed into.
type ValueType int

const (
	String ValueType = iota + 1 // string
	Char                        // byte, exactly one character
	Int                         // int32
	Uint                        // uint32
	Long                        // int64
	Ulong                       // uint64
	LongLong                    // int64
	UlongLong                   // uint64
	Size                        // uint, platform word size
	Float                       // float32
	Double                      // float64
)

var typeNames = map[ValueType]string{
	String:    "string",
	Char:      "char",
	Int:       "int",
	Uint:      "uint",
	Long:      "long",
	Ulong:     "ulong",
	LongLong:  "longlong",
	UlongLong: "ulonglong",
	Size:      "size",
	Float:     "float",
	Double:    "double",
}

func (t ValueType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// TypeByName maps a type name (as rendered by ValueType.String) back to its
// ValueType. It reports false for unknown names.
func TypeByName(name string) (ValueType, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Descriptor declares a single argument. Required descriptors are matched by
// position, Optional and Boolean descriptors by exact Flag token.
type Descriptor struct {
	Kind Kind
	Name string
	// Type is the scalar type of the argument's value. Boolean descriptors
	// carry no value type and must leave it zero.
	Type ValueType
	// Label names the value in usage and help text. Defaults to Name.
	Label string
	Help  string
	// Flag is the exact command-line token for Optional and Boolean
	// descriptors. Required descriptors must leave it empty.
	Flag string
	// Default is the typed default value for Optional descriptors. Its Go
	// type must match Type (see Args getters for the mapping). A nil
	// Default means the type's zero value.
	Default any
	// Format is an fmt verb used to render Default in help text, e.g.
	// "%.2g". Empty selects a type-appropriate verb.
	Format string
}

func (d Descriptor) label() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// SchemaError reports an invalid descriptor set passed to New.
type SchemaError struct {
	Name string // offending descriptor name, if known
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("schema: argument %q: %s", e.Name, e.Msg)
	}
	return "schema: " + e.Msg
}

// Schema is an immutable, validated set of argument descriptors: an ordered
// sequence of Required descriptors plus Optional and Boolean descriptors
// keyed by flag token.
type Schema struct {
	required []Descriptor
	optional []Descriptor
	boolean  []Descriptor
	byFlag   map[string]Descriptor
	out      io.Writer
}

// New builds a Schema from descriptors. Required descriptors keep their
// relative order; Optional and Boolean order matters only for help listing.
// New rejects duplicate names, duplicate or missing flag tokens, defaults
// whose Go type does not match the declared value type, and value types on
// Boolean descriptors.
func New(descs ...Descriptor) (*Schema, error) {
	s := &Schema{
		byFlag: make(map[string]Descriptor),
		out:    os.Stderr,
	}
	names := make(map[string]bool, len(descs))
	for _, d := range descs {
		if d.Name == "" {
			return nil, &SchemaError{Msg: "descriptor has no name"}
		}
		if names[d.Name] {
			return nil, &SchemaError{Name: d.Name, Msg: "duplicate name"}
		}
		names[d.Name] = true

		switch d.Kind {
		case Required:
			if d.Flag != "" {
				return nil, &SchemaError{Name: d.Name, Msg: "required argument cannot have a flag"}
			}
			if d.Default != nil {
				return nil, &SchemaError{Name: d.Name, Msg: "required argument cannot have a default"}
			}
			if _, ok := typeNames[d.Type]; !ok {
				return nil, &SchemaError{Name: d.Name, Msg: "unknown value type"}
			}
			s.required = append(s.required, d)
		case Optional:
			if d.Flag == "" {
				return nil, &SchemaError{Name: d.Name, Msg: "optional argument needs a flag"}
			}
			if _, ok := typeNames[d.Type]; !ok {
				return nil, &SchemaError{Name: d.Name, Msg: "unknown value type"}
			}
			if d.Default == nil {
				d.Default = zeroValue(d.Type)
			} else if !defaultMatches(d.Type, d.Default) {
				return nil, &SchemaError{Name: d.Name, Msg: fmt.Sprintf("default %T does not match type %s", d.Default, d.Type)}
			}
			if _, dup := s.byFlag[d.Flag]; dup {
				return nil, &SchemaError{Name: d.Name, Msg: fmt.Sprintf("duplicate flag %q", d.Flag)}
			}
			s.byFlag[d.Flag] = d
			s.optional = append(s.optional, d)
		case Boolean:
			if d.Flag == "" {
				return nil, &SchemaError{Name: d.Name, Msg: "boolean argument needs a flag"}
			}
			if d.Type != 0 {
				return nil, &SchemaError{Name: d.Name, Msg: "boolean argument cannot have a value type"}
			}
			if d.Default != nil {
				return nil, &SchemaError{Name: d.Name, Msg: "boolean argument cannot have a default"}
			}
			if _, dup := s.byFlag[d.Flag]; dup {
				return nil, &SchemaError{Name: d.Name, Msg: fmt.Sprintf("duplicate flag %q", d.Flag)}
			}
			s.byFlag[d.Flag] = d
			s.boolean = append(s.boolean, d)
		default:
			return nil, &SchemaError{Name: d.Name, Msg: fmt.Sprintf("unknown kind %d", int(d.Kind))}
		}
	}
	return s, nil
}

// MustNew is New but panics on error. Intended for schemas declared as
// package-level literals.
func MustNew(descs ...Descriptor) *Schema {
	s, err := New(descs...)
	if err != nil {
		panic(err)
	}
	return s
}

// SetOutput redirects scan diagnostics, which default to os.Stderr.
func (s *Schema) SetOutput(w io.Writer) { s.out = w }

// Required returns the positional descriptors in declaration order.
// The returned slice must not be modified.
func (s *Schema) Required() []Descriptor { return s.required }

// Optional returns the value-carrying flag descriptors in declaration order.
// The returned slice must not be modified.
func (s *Schema) Optional() []Descriptor { return s.optional }

// Boolean returns the switch descriptors in declaration order.
// The returned slice must not be modified.
func (s *Schema) Boolean() []Descriptor { return s.boolean }

func defaultMatches(t ValueType, def any) bool {
	switch t {
	case String:
		_, ok := def.(string)
		return ok
	case Char:
		_, ok := def.(byte)
		return ok
	case Int:
		_, ok := def.(int32)
		return ok
	case Uint:
		_, ok := def.(uint32)
		return ok
	case Long, LongLong:
		_, ok := def.(int64)
		return ok
	case Ulong, UlongLong:
		_, ok := def.(uint64)
		return ok
	case Size:
		_, ok := def.(uint)
		return ok
	case Float:
		_, ok := def.(float32)
		return ok
	case Double:
		_, ok := def.(float64)
		return ok
	}
	return false
}
