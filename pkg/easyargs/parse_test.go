// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easyargs

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestParseValue_Unsigned(t *testing.T) {
	tests := []struct {
		name    string
		typ     ValueType
		text    string
		want    any
		wantErr string
	}{
		{name: "decimal", typ: Uint, text: "42", want: uint32(42)},
		{name: "octal prefix", typ: Uint, text: "017", want: uint32(15)},
		{name: "hex prefix", typ: Uint, text: "0x1f", want: uint32(31)},
		{name: "zero", typ: Uint, text: "0", want: uint32(0)},
		{name: "max uint", typ: Uint, text: "4294967295", want: uint32(math.MaxUint32)},
		{name: "leading whitespace", typ: Uint, text: "  7", want: uint32(7)},
		{name: "plus sign", typ: Uint, text: "+5", want: uint32(5)},
		{name: "overflow uint", typ: Uint, text: "4294967296", wantErr: "out of range"},
		{name: "negative", typ: Uint, text: "-1", wantErr: "negative value not allowed"},
		{name: "negative large magnitude", typ: Uint, text: "-99999999999999999999", wantErr: "negative value not allowed"},
		{name: "trailing garbage", typ: Uint, text: "12x", wantErr: "not a valid"},
		{name: "trailing whitespace", typ: Uint, text: "12 ", wantErr: "not a valid"},
		{name: "empty", typ: Uint, text: "", wantErr: "empty input"},
		{name: "whitespace only", typ: Uint, text: "   ", wantErr: "empty input"},
		{name: "max ulong", typ: Ulong, text: "18446744073709551615", want: uint64(math.MaxUint64)},
		{name: "overflow ulong", typ: Ulong, text: "18446744073709551616", wantErr: "out of range"},
		{name: "ulonglong hex", typ: UlongLong, text: "0xffffffffffffffff", want: uint64(math.MaxUint64)},
		{name: "size decimal", typ: Size, text: "1024", want: uint(1024)},
		{name: "size negative", typ: Size, text: "-1024", wantErr: "negative value not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.typ, tt.text)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseValue(%s, %q) = %v, want error containing %q", tt.typ, tt.text, got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%s, %q) error = %v", tt.typ, tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseValue(%s, %q) = %v (%T), want %v (%T)", tt.typ, tt.text, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestParseValue_Signed(t *testing.T) {
	tests := []struct {
		name    string
		typ     ValueType
		text    string
		want    any
		wantErr string
	}{
		{name: "decimal", typ: Int, text: "42", want: int32(42)},
		{name: "negative decimal", typ: Int, text: "-42", want: int32(-42)},
		{name: "hex", typ: Int, text: "0x10", want: int32(16)},
		{name: "negative hex", typ: Int, text: "-0x10", want: int32(-16)},
		{name: "min int", typ: Int, text: "-2147483648", want: int32(math.MinInt32)},
		{name: "max int", typ: Int, text: "2147483647", want: int32(math.MaxInt32)},
		{name: "below min int", typ: Int, text: "-2147483649", wantErr: "out of range"},
		{name: "above max int", typ: Int, text: "2147483648", wantErr: "out of range"},
		{name: "leading whitespace", typ: Int, text: "\t-3", want: int32(-3)},
		{name: "trailing garbage", typ: Int, text: "3.5", wantErr: "not a valid"},
		{name: "empty", typ: Int, text: "", wantErr: "empty input"},
		{name: "long max", typ: Long, text: "9223372036854775807", want: int64(math.MaxInt64)},
		{name: "long overflow", typ: Long, text: "9223372036854775808", wantErr: "out of range"},
		{name: "longlong min", typ: LongLong, text: "-9223372036854775808", want: int64(math.MinInt64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.typ, tt.text)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseValue(%s, %q) = %v, want error containing %q", tt.typ, tt.text, got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%s, %q) error = %v", tt.typ, tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseValue(%s, %q) = %v, want %v", tt.typ, tt.text, got, tt.want)
			}
		})
	}
}

func TestParseValue_Float(t *testing.T) {
	tests := []struct {
		name    string
		typ     ValueType
		text    string
		want    any
		wantErr string
	}{
		{name: "float", typ: Float, text: "2.5", want: float32(2.5)},
		{name: "float negative", typ: Float, text: "-0.25", want: float32(-0.25)},
		{name: "float exponent", typ: Float, text: "1e3", want: float32(1000)},
		{name: "float leading whitespace", typ: Float, text: " 1.5", want: float32(1.5)},
		{name: "float overflow", typ: Float, text: "1e200", wantErr: "out of range"},
		{name: "float garbage", typ: Float, text: "1.5abc", wantErr: "not a valid"},
		{name: "float empty", typ: Float, text: "", wantErr: "empty input"},
		{name: "double", typ: Double, text: "3.14159", want: 3.14159},
		{name: "double huge ok", typ: Double, text: "1e200", want: 1e200},
		{name: "double overflow", typ: Double, text: "1e400", wantErr: "out of range"},
		{name: "double garbage", typ: Double, text: "--1", wantErr: "not a valid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.typ, tt.text)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ParseValue(%s, %q) = %v, want error containing %q", tt.typ, tt.text, got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%s, %q) error = %v", tt.typ, tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseValue(%s, %q) = %v, want %v", tt.typ, tt.text, got, tt.want)
			}
		})
	}
}

func TestParseValue_StringAndChar(t *testing.T) {
	if got, err := ParseValue(String, "hello"); err != nil || got != "hello" {
		t.Errorf("ParseValue(String, hello) = %v, %v", got, err)
	}
	if _, err := ParseValue(String, ""); err == nil {
		t.Error("ParseValue(String, \"\") succeeded, want error")
	}
	if got, err := ParseValue(Char, "a"); err != nil || got != byte('a') {
		t.Errorf("ParseValue(Char, a) = %v, %v", got, err)
	}
	if _, err := ParseValue(Char, "ab"); err == nil {
		t.Error("ParseValue(Char, ab) succeeded, want error")
	}
	if _, err := ParseValue(Char, ""); err == nil {
		t.Error("ParseValue(Char, \"\") succeeded, want error")
	}
}

func TestParseValue_ErrorDetails(t *testing.T) {
	_, err := ParseValue(Int, "2147483648")
	var verr *ValueError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *ValueError", err)
	}
	if verr.Text != "2147483648" || verr.Type != Int {
		t.Errorf("ValueError = %+v, want Text=2147483648 Type=int", verr)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Error("ValueError does not wrap the strconv error")
	}
}
