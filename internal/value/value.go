// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package value - converts raw option-argument text into typed values and
// checks them against declared bounds.
//
// The package is mechanics only: it knows nothing about options or error
// policy. Callers format user facing messages from the structured results.
package value

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Kind - conversion target for one option-argument.
type Kind int

const (
	// String - no conversion, bounds apply to the text length.
	String Kind = iota
	// Int - strconv.Atoi.
	Int
	// Uint - base 10 uint.
	Uint
	// Int64 - base 10 int64.
	Int64
	// Uint64 - base 10 uint64.
	Uint64
	// Float64 - strconv.ParseFloat.
	Float64
	// Bytes - SI/IEC byte size ("42 MB", "64KiB") to int64, via go-humanize.
	Bytes
	// Duration - time.ParseDuration to time.Duration, bounds in seconds.
	Duration
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float64:
		return "float64"
	case Bytes:
		return "bytes"
	case Duration:
		return "duration"
	}
	return "string"
}

// Convert - Convert raw text to the kind's Go type.
// Returns string, int, uint, int64 (Int64 and Bytes), uint64, float64 or
// time.Duration. The error is the underlying parse failure.
func Convert(k Kind, raw string) (interface{}, error) {
	switch k {
	case Int:
		return strconv.Atoi(raw)
	case Uint:
		u, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return uint(u), nil
	case Int64:
		return strconv.ParseInt(raw, 10, 64)
	case Uint64:
		return strconv.ParseUint(raw, 10, 64)
	case Float64:
		return strconv.ParseFloat(raw, 64)
	case Bytes:
		u, err := humanize.ParseBytes(raw)
		if err != nil {
			return nil, err
		}
		return int64(u), nil
	case Duration:
		return time.ParseDuration(raw)
	}
	return raw, nil
}

// Violation - one failed bounds check.
type Violation struct {
	Limit  float64
	Below  bool // value under Min rather than over Max
	Length bool // the violated bound is a text length bound
}

// CheckBounds - Check a converted value against min/max.
//
// Min and max both zero disables the check. A non zero min is a lower bound
// and a non zero max an upper bound; for String the bounds apply to the text
// length in bytes, for Duration to the value in seconds. Returns nil when
// the value passes.
func CheckBounds(k Kind, v interface{}, min, max float64) *Violation {
	if min == 0 && max == 0 {
		return nil
	}
	var n float64
	length := false
	switch tv := v.(type) {
	case string:
		n = float64(len(tv))
		length = true
	case int:
		n = float64(tv)
	case uint:
		n = float64(tv)
	case int64:
		n = float64(tv)
	case uint64:
		n = float64(tv)
	case float64:
		n = tv
	case time.Duration:
		n = tv.Seconds()
	default:
		return nil
	}
	if min != 0 && n < min {
		return &Violation{Limit: min, Below: true, Length: length}
	}
	if max != 0 && n > max {
		return &Violation{Limit: max, Length: length}
	}
	return nil
}

// Split - Split raw text on any rune of the delimiter set.
// Empty fields are dropped, so "a,,b" with delims "," yields two values.
func Split(raw, delims string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}
