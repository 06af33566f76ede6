// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easyargs

// Args holds one parsed value per descriptor, keyed by descriptor name.
// Instances are independent; Scan never shares state between them.
//
// Getters on an unknown name, or on a name whose descriptor has a different
// value type, return the zero value. That is a caller programming error, not
// a runtime condition the library reports.
type Args struct {
	vals map[string]any
}

// Defaults builds the initial Args for the schema: Required fields at their
// type's zero value, Optional fields at their declared default, Boolean
// fields at false. It never fails.
func (s *Schema) Defaults() *Args {
	a := &Args{vals: make(map[string]any, len(s.required)+len(s.optional)+len(s.boolean))}
	for _, d := range s.required {
		a.vals[d.Name] = zeroValue(d.Type)
	}
	for _, d := range s.optional {
		a.vals[d.Name] = d.Default
	}
	for _, d := range s.boolean {
		a.vals[d.Name] = false
	}
	return a
}

func zeroValue(t ValueType) any {
	switch t {
	case String:
		return ""
	case Char:
		return byte(0)
	case Int:
		return int32(0)
	case Uint:
		return uint32(0)
	case Long, LongLong:
		return int64(0)
	case Ulong, UlongLong:
		return uint64(0)
	case Size:
		return uint(0)
	case Float:
		return float32(0)
	case Double:
		return float64(0)
	}
	return nil
}

func (a *Args) set(name string, v any) { a.vals[name] = v }

// Value returns the raw tagged value for name and whether it exists.
func (a *Args) Value(name string) (any, bool) {
	v, ok := a.vals[name]
	return v, ok
}

// String returns a String-typed field.
func (a *Args) String(name string) string {
	v, _ := a.vals[name].(string)
	return v
}

// Char returns a Char-typed field.
func (a *Args) Char(name string) byte {
	v, _ := a.vals[name].(byte)
	return v
}

// Int returns an Int-typed field.
func (a *Args) Int(name string) int32 {
	v, _ := a.vals[name].(int32)
	return v
}

// Uint returns a Uint-typed field.
func (a *Args) Uint(name string) uint32 {
	v, _ := a.vals[name].(uint32)
	return v
}

// Long returns a Long- or LongLong-typed field.
func (a *Args) Long(name string) int64 {
	v, _ := a.vals[name].(int64)
	return v
}

// LongLong returns a Long- or LongLong-typed field.
func (a *Args) LongLong(name string) int64 { return a.Long(name) }

// Ulong returns a Ulong- or UlongLong-typed field.
func (a *Args) Ulong(name string) uint64 {
	v, _ := a.vals[name].(uint64)
	return v
}

// UlongLong returns a Ulong- or UlongLong-typed field.
func (a *Args) UlongLong(name string) uint64 { return a.Ulong(name) }

// Size returns a Size-typed field.
func (a *Args) Size(name string) uint {
	v, _ := a.vals[name].(uint)
	return v
}

// Float returns a Float-typed field.
func (a *Args) Float(name string) float32 {
	v, _ := a.vals[name].(float32)
	return v
}

// Double returns a Double-typed field.
func (a *Args) Double(name string) float64 {
	v, _ := a.vals[name].(float64)
	return v
}

// Bool returns a Boolean field.
func (a *Args) Bool(name string) bool {
	v, _ := a.vals[name].(bool)
	return v
}
