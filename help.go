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
	"strings"

	"github.com/go-optargs/optargs/internal/help"
	"github.com/go-optargs/optargs/text"
)

// Help - render the table as help text: the configured header, an OPTIONS
// section, a SUBCOMMANDS section with nested subcommands listed under
// their full path, and the configured footer. Sections are separated by a
// blank line; empty sections are omitted. Entries keep declaration order.
func (set *OptSet) Help() string {
	var parts []string
	if set.helpHeader != "" {
		parts = append(parts, help.Block(set.helpHeader, 0, set.maxLineLen))
	}
	if s := help.Section(text.HelpOptionsHeader, set.optionEntries(), set.maxLineLen, set.minBlockLen); s != "" {
		parts = append(parts, s)
	}
	var subs []help.Entry
	set.subEntries("", &subs)
	if s := help.Section(text.HelpSubcommandsHeader, subs, set.maxLineLen, set.minBlockLen); s != "" {
		parts = append(parts, s)
	}
	if set.helpFooter != "" {
		parts = append(parts, help.Block(set.helpFooter, 0, set.maxLineLen))
	}
	return strings.Join(parts, "\n")
}

// PrintHelp - write Help to w.
func (set *OptSet) PrintHelp(w io.Writer) {
	fmt.Fprint(w, set.Help())
}

func (set *OptSet) optionEntries() []help.Entry {
	var entries []help.Entry
	for pair := set.byName.Oldest(); pair != nil; pair = pair.Next() {
		o := pair.Value
		if o.ID < 0 || o.Description == Hidden {
			continue
		}
		entries = append(entries, help.Entry{Lead: o.synopsis(), Text: o.Description})
	}
	return entries
}

// subEntries - depth first walk in declaration order; nested names are
// qualified with their parent path ("remote add").
func (set *OptSet) subEntries(prefix string, out *[]help.Entry) {
	for pair := set.byName.Oldest(); pair != nil; pair = pair.Next() {
		o := pair.Value
		if o.ID >= 0 || o.Description == Hidden {
			continue
		}
		lead := prefix + o.synopsis()
		*out = append(*out, help.Entry{Lead: lead, Text: o.Description})
		if o.Sub != nil {
			o.Sub.subEntries(prefix+o.Name+" ", out)
		}
	}
}
