// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/shlex"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Logger - debug logging for the package, discarded by default. Redirect
// it to see the parse walk:
//
//	optargs.Logger.SetOutput(os.Stderr)
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - where continue-mode diagnostics are printed. Defaults to
// os.Stderr.
var Writer io.Writer = os.Stderr

// ErrorMode - what a Parser does when a command line error surfaces.
type ErrorMode int

const (
	// HaltOnError - the first error ends the session; Scan returns false
	// and Err returns the error.
	HaltOnError ErrorMode = iota
	// ContinueOnError - errors are printed to Writer and collected; the
	// session keeps scanning and Err returns the aggregate at the end.
	ContinueOnError
)

// Help layout defaults, tuned for an 80 column terminal.
const (
	DefaultMaxLineLen  = 80
	DefaultMinBlockLen = 30
)

// OptSet - an immutable option table. Built once with New, then shared
// freely: every Parser created from it keeps its own state, so a single
// OptSet serves concurrent sessions.
type OptSet struct {
	byName  *orderedmap.OrderedMap[string, *Opt]
	byShort map[int]*Opt
	hasSubs bool

	errorMode   ErrorMode
	maxLineLen  int
	minBlockLen int
	helpHeader  string
	helpFooter  string
}

// New - build a table from option declarations. Declaration order is help
// order. Definition errors panic: they are bugs in the calling program,
// not runtime conditions.
func New(opts ...Opt) *OptSet {
	set := &OptSet{
		byName:      orderedmap.New[string, *Opt](),
		byShort:     map[int]*Opt{},
		maxLineLen:  DefaultMaxLineLen,
		minBlockLen: DefaultMinBlockLen,
	}
	ids := map[int]bool{}
	for i := range opts {
		o := &opts[i]
		o.normalize()
		o.validate()
		if ids[o.ID] {
			panic(fmt.Sprintf("Duplicate identity code for option '%s'", o.label()))
		}
		ids[o.ID] = true
		key := o.canonical()
		if _, exists := set.byName.Get(key); exists {
			panic(fmt.Sprintf("Duplicate definition for option '%s'", key))
		}
		set.byName.Set(key, o)
		if o.ID > 0 && isShortName(o.ID) {
			set.byShort[o.ID] = o
		}
		if o.ID < 0 {
			set.hasSubs = true
		}
	}
	return set
}

// SetErrorMode - select halt or continue behavior for subsequent Parsers.
func (set *OptSet) SetErrorMode(mode ErrorMode) *OptSet {
	set.errorMode = mode
	return set
}

// SetMaxLineLen - help output line length.
func (set *OptSet) SetMaxLineLen(n int) *OptSet {
	set.maxLineLen = n
	return set
}

// SetMinBlockLen - minimum width reserved for description blocks; leads
// too wide to leave this much room get their own line.
func (set *OptSet) SetMinBlockLen(n int) *OptSet {
	set.minBlockLen = n
	return set
}

// SetHelp - free text printed before and after the generated sections.
// Either may be empty.
func (set *OptSet) SetHelp(header, footer string) *OptSet {
	set.helpHeader = header
	set.helpFooter = footer
	return set
}

// lookupLong - exact long name match, no abbreviation.
func (set *OptSet) lookupLong(name string) *Opt {
	if o, ok := set.byName.Get(name); ok && o.ID > 0 && o.Name == name {
		return o
	}
	return nil
}

// lookupSub - subcommands match operands by name only.
func (set *OptSet) lookupSub(name string) *Opt {
	if o, ok := set.byName.Get(name); ok && o.ID < 0 {
		return o
	}
	return nil
}

// find - option by long name or single character short name.
func (set *OptSet) find(name string) *Opt {
	if o, ok := set.byName.Get(name); ok {
		return o
	}
	r := []rune(name)
	if len(r) == 1 {
		return set.byShort[int(r[0])]
	}
	return nil
}

// Parse - drain a full session in one call. Returns the operands, with the
// subcommand name prepended when the session ended in a transfer, so the
// result can be fed to the child table the way os.Args would be.
func (set *OptSet) Parse(args []string) ([]string, error) {
	p := set.Parser(args)
	for p.Scan() {
	}
	if err := p.Err(); err != nil {
		return p.Args(), err
	}
	if p.subOpt != nil {
		return append([]string{p.name}, p.Remaining()...), nil
	}
	return p.Args(), nil
}

// ParseString - Parse over a shell style command line string. Convenient
// in tests and in tools that re-parse stored invocations.
func (set *OptSet) ParseString(cl string) ([]string, error) {
	args, err := shlex.Split(cl)
	if err != nil {
		return nil, err
	}
	return set.Parse(args)
}
