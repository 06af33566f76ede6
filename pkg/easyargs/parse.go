// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package easyargs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ValueError is returned when a raw argument cannot be converted to its
// declared value type. Msg is the user-facing diagnostic; Err carries the
// underlying strconv error when one exists.
type ValueError struct {
	Text string
	Type ValueType
	Msg  string
	Err  error
}

func (e *ValueError) Error() string { return e.Msg }

func (e *ValueError) Unwrap() error { return e.Err }

func valueErr(text string, t ValueType, format string, fmtArgs ...any) *ValueError {
	return &ValueError{Text: text, Type: t, Msg: fmt.Sprintf(format, fmtArgs...)}
}

// ParseValue converts raw text to the Go value for the given type. The
// returned value's concrete type follows the Args getter mapping (Int is
// int32, Long and LongLong are int64, Size is uint, and so on).
//
// Numeric parsing skips leading whitespace, autodetects the base from the
// usual 0/0x prefixes, and rejects trailing garbage. Unsigned types reject a
// leading '-' outright, regardless of magnitude.
func ParseValue(t ValueType, text string) (any, error) {
	switch t {
	case String:
		return parseString(text)
	case Char:
		return parseChar(text)
	case Int:
		v, err := parseSigned(text, t, 32)
		return int32(v), err
	case Long:
		return parseSigned(text, t, 64)
	case LongLong:
		return parseSigned(text, t, 64)
	case Uint:
		v, err := parseUnsigned(text, t, 32)
		return uint32(v), err
	case Ulong:
		return parseUnsigned(text, t, 64)
	case UlongLong:
		return parseUnsigned(text, t, 64)
	case Size:
		v, err := parseUnsigned(text, t, strconv.IntSize)
		return uint(v), err
	case Float:
		v, err := parseFloat(text, t, 32)
		return float32(v), err
	case Double:
		return parseFloat(text, t, 64)
	}
	return nil, fmt.Errorf("easyargs: unknown value type %d", int(t))
}

func parseString(text string) (string, error) {
	if text == "" {
		return "", valueErr(text, String, "empty string value not allowed")
	}
	return text, nil
}

func parseChar(text string) (byte, error) {
	if len(text) != 1 {
		return 0, valueErr(text, Char, "'%s' is not a valid char", text)
	}
	return text[0], nil
}

func skipLeading(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func parseSigned(text string, t ValueType, bits int) (int64, error) {
	s := skipLeading(text)
	if s == "" {
		return 0, valueErr(text, t, "empty input for %s", t)
	}
	v, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, &ValueError{Text: text, Type: t, Msg: fmt.Sprintf("'%s' is out of range for %s", text, t), Err: err}
		}
		return 0, &ValueError{Text: text, Type: t, Msg: fmt.Sprintf("'%s' is not a valid %s", text, t), Err: err}
	}
	return v, nil
}

func parseUnsigned(text string, t ValueType, bits int) (uint64, error) {
	s := skipLeading(text)
	if s == "" {
		return 0, valueErr(text, t, "empty input for %s", t)
	}
	if s[0] == '-' {
		// Checked before strconv so negative input gets its own
		// diagnostic instead of a generic syntax error.
		return 0, valueErr(text, t, "'%s' negative value not allowed for %s", text, t)
	}
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, &ValueError{Text: text, Type: t, Msg: fmt.Sprintf("'%s' is out of range for %s", text, t), Err: err}
		}
		return 0, &ValueError{Text: text, Type: t, Msg: fmt.Sprintf("'%s' is not a valid %s", text, t), Err: err}
	}
	return v, nil
}

func parseFloat(text string, t ValueType, bits int) (float64, error) {
	s := skipLeading(text)
	if s == "" {
		return 0, valueErr(text, t, "empty input for %s", t)
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return 0, &ValueError{Text: text, Type: t, Msg: fmt.Sprintf("'%s' is out of range for %s", text, t), Err: err}
		}
		return 0, &ValueError{Text: text, Type: t, Msg: fmt.Sprintf("'%s' is not a valid %s", text, t), Err: err}
	}
	return v, nil
}
