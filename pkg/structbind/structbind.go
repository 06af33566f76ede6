// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package structbind derives an easyargs schema from a tagged struct and
// copies scan results back into it.
//
// Fields tagged `pos:"N"` become required positional arguments ordered by N.
// Fields tagged `flag:"name"` become optional arguments matched by the token
// "--name"; bool fields become presence-only switches. Supporting tags:
// `label:"..."` and `help:"..."` feed help text, `default:"..."` supplies an
// optional argument's default (parsed exactly like a command-line value),
// and `format:"..."` controls how the default renders in help output.
//
//	type flags struct {
//	    Count   int32   `pos:"0" help:"Number of items"`
//	    Rate    float32 `flag:"rate" default:"1.0" help:"Sampling rate"`
//	    Verbose bool    `flag:"verbose" help:"Verbose output"`
//	}
//
//	var f flags
//	if err := structbind.Parse(&f, os.Args); err != nil { ... }
package structbind

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/easyargs/easyargs/pkg/easyargs"
)

// typeFor maps a struct field's Go type to the schema value type.
func typeFor(t reflect.Type) (easyargs.ValueType, bool) {
	switch t.Kind() {
	case reflect.String:
		return easyargs.String, true
	case reflect.Uint8:
		return easyargs.Char, true
	case reflect.Int32:
		return easyargs.Int, true
	case reflect.Uint32:
		return easyargs.Uint, true
	case reflect.Int, reflect.Int64:
		return easyargs.Long, true
	case reflect.Uint64:
		return easyargs.Ulong, true
	case reflect.Uint:
		return easyargs.Size, true
	case reflect.Float32:
		return easyargs.Float, true
	case reflect.Float64:
		return easyargs.Double, true
	}
	return 0, false
}

// Derive builds a schema from the tags of v, which must be a struct or a
// pointer to one.
func Derive(v any) (*easyargs.Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("structbind: %T is not a struct", v)
	}

	type posDesc struct {
		pos  int
		desc easyargs.Descriptor
	}
	var positional []posDesc
	var flagged []easyargs.Descriptor

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		posTag, hasPos := field.Tag.Lookup("pos")
		flagTag, hasFlag := field.Tag.Lookup("flag")
		if !hasPos && !hasFlag {
			continue
		}
		if hasPos && hasFlag {
			return nil, fmt.Errorf("structbind: field %s has both pos and flag tags", field.Name)
		}

		name := strings.ToLower(field.Name)
		d := easyargs.Descriptor{
			Name:  name,
			Label: field.Tag.Get("label"),
			Help:  field.Tag.Get("help"),
		}

		if hasPos {
			pos, err := strconv.Atoi(posTag)
			if err != nil {
				return nil, fmt.Errorf("structbind: field %s: invalid pos tag %q", field.Name, posTag)
			}
			vt, ok := typeFor(field.Type)
			if !ok {
				return nil, fmt.Errorf("structbind: field %s: unsupported type %s", field.Name, field.Type)
			}
			d.Kind = easyargs.Required
			d.Type = vt
			positional = append(positional, posDesc{pos: pos, desc: d})
			continue
		}

		d.Flag = "--" + flagTag
		d.Format = field.Tag.Get("format")
		if field.Type.Kind() == reflect.Bool {
			if _, ok := field.Tag.Lookup("default"); ok {
				return nil, fmt.Errorf("structbind: field %s: bool flags cannot take a default", field.Name)
			}
			d.Kind = easyargs.Boolean
			flagged = append(flagged, d)
			continue
		}

		vt, ok := typeFor(field.Type)
		if !ok {
			return nil, fmt.Errorf("structbind: field %s: unsupported type %s", field.Name, field.Type)
		}
		d.Kind = easyargs.Optional
		d.Type = vt
		if defTag, ok := field.Tag.Lookup("default"); ok {
			def, err := easyargs.ParseValue(vt, defTag)
			if err != nil {
				return nil, fmt.Errorf("structbind: field %s: bad default: %w", field.Name, err)
			}
			d.Default = def
		}
		flagged = append(flagged, d)
	}

	sort.SliceStable(positional, func(i, j int) bool { return positional[i].pos < positional[j].pos })

	descs := make([]easyargs.Descriptor, 0, len(positional)+len(flagged))
	for _, p := range positional {
		descs = append(descs, p.desc)
	}
	descs = append(descs, flagged...)
	return easyargs.New(descs...)
}

// Bind copies scanned values into the fields of v, which must be a pointer
// to the struct the schema was derived from.
func Bind(v any, args *easyargs.Args) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("structbind: %T is not a non-nil struct pointer", v)
	}
	rv = rv.Elem()
	t := rv.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		_, hasPos := field.Tag.Lookup("pos")
		_, hasFlag := field.Tag.Lookup("flag")
		if !hasPos && !hasFlag {
			continue
		}
		val, ok := args.Value(strings.ToLower(field.Name))
		if !ok {
			continue
		}
		if err := setField(rv.Field(i), val); err != nil {
			return fmt.Errorf("structbind: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func setField(field reflect.Value, val any) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(val.(string))
	case reflect.Bool:
		field.SetBool(val.(bool))
	case reflect.Int, reflect.Int32, reflect.Int64:
		switch v := val.(type) {
		case int32:
			field.SetInt(int64(v))
		case int64:
			field.SetInt(v)
		default:
			return fmt.Errorf("cannot assign %T", val)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint32, reflect.Uint64:
		switch v := val.(type) {
		case byte:
			field.SetUint(uint64(v))
		case uint32:
			field.SetUint(uint64(v))
		case uint64:
			field.SetUint(v)
		case uint:
			field.SetUint(uint64(v))
		default:
			return fmt.Errorf("cannot assign %T", val)
		}
	case reflect.Float32, reflect.Float64:
		switch v := val.(type) {
		case float32:
			field.SetFloat(float64(v))
		case float64:
			field.SetFloat(v)
		default:
			return fmt.Errorf("cannot assign %T", val)
		}
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

// Parse derives a schema from v, scans argv against it, and binds the result
// back into v. The scan's diagnostics go to the schema's default output.
func Parse(v any, argv []string) error {
	schema, err := Derive(v)
	if err != nil {
		return err
	}
	args, err := schema.Scan(argv)
	if err != nil {
		return err
	}
	return Bind(v, args)
}
