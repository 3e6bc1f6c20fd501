// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

// Package level convenience wrapper around one hidden table and one hidden
// session, for programs with a single command line and no appetite for
// plumbing an OptSet around. Not safe for concurrent use; everything else
// in the package is.

var (
	globalSet    *OptSet
	globalParser *Parser
)

// Init - register the global table, replacing any previous one. Returns
// the table so callers can tune it (SetHelp, SetErrorMode) and render its
// help.
func Init(opts ...Opt) *OptSet {
	globalSet = New(opts...)
	globalParser = nil
	return globalSet
}

// Parse - drain args against the table registered with Init. Panics
// without Init; that is a programming error, not a command line error.
func Parse(args []string) ([]string, error) {
	if globalSet == nil {
		panic("optargs: Parse called before Init")
	}
	globalParser = globalSet.Parser(args)
	for globalParser.Scan() {
	}
	if err := globalParser.Err(); err != nil {
		return globalParser.Args(), err
	}
	if globalParser.subOpt != nil {
		return append([]string{globalParser.name}, globalParser.Remaining()...), nil
	}
	return globalParser.Args(), nil
}

// Called - whether the named option matched during the last global Parse.
func Called(name string) bool {
	return globalParser != nil && globalParser.Called(name)
}

// Reset - forget the global table and session.
func Reset() {
	globalSet = nil
	globalParser = nil
}
