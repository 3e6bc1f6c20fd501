// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - forward iterator over an argument vector with
// single token lookahead.
package sliceiterator

// Iterator - iterator data. The zero value is not usable, build with New.
type Iterator struct {
	data []string
	idx  int
}

// New - builds an Iterator positioned before the first element.
func New(s []string) *Iterator {
	return &Iterator{data: s, idx: -1}
}

// Next - moves the index forward and reports whether a value is available.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// More - reports whether there is data after the current index.
func (a *Iterator) More() bool {
	return a.idx+1 < len(a.data)
}

// Index - current index, -1 before the first Next call.
func (a *Iterator) Index() int {
	return a.idx
}

// Value - value at the current index, or an empty string once the data is
// fully read.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// Peek - next value without advancing, with a validity indicator.
func (a *Iterator) Peek() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// Rest - everything after the current index, exclusive. Empty when fully
// read. The returned slice shares the iterator's backing array.
func (a *Iterator) Rest() []string {
	if a.idx+1 >= len(a.data) {
		return []string{}
	}
	return a.data[a.idx+1:]
}
