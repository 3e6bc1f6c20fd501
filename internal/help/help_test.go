// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package help

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSection(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		entries     []Entry
		maxLineLen  int
		minBlockLen int
		expected    string
	}{
		{
			"empty", "OPTIONS:", []Entry{}, 80, 30,
			"",
		},
		{
			"aligned columns", "OPTIONS:",
			[]Entry{
				{Lead: "-f, --force", Text: "Force the operation."},
				{Lead: "-o, --output FILE", Text: "Write results to FILE instead of standard output."},
			},
			80, 30,
			`OPTIONS:
    -f, --force          Force the operation.
    -o, --output FILE    Write results to FILE instead of standard output.
`,
		},
		{
			"wraps at whitespace", "OPTIONS:",
			[]Entry{
				{Lead: "-v", Text: "Raise verbosity. Repeat for more detail."},
			},
			40, 20,
			`OPTIONS:
    -v    Raise verbosity. Repeat for
          more detail.
`,
		},
		{
			"clamped indent puts wide lead on its own line", "OPTIONS:",
			[]Entry{
				{Lead: "--very-long-option-name VALUE", Text: "Sets a value."},
				{Lead: "-s", Text: "Short."},
			},
			40, 20,
			`OPTIONS:
    --very-long-option-name VALUE
                    Sets a value.
    -s              Short.
`,
		},
		{
			"overlong word stands alone unbroken", "OPTIONS:",
			[]Entry{
				{Lead: "-u URL", Text: "See https://example.com/really/long/path for details."},
			},
			30, 10,
			`OPTIONS:
    -u URL    See
              https://example.com/really/long/path
              for details.
`,
		},
		{
			"embedded newline forces a break", "OPTIONS:",
			[]Entry{
				{Lead: "-m", Text: "first line\nsecond line"},
			},
			80, 30,
			`OPTIONS:
    -m    first line
          second line
`,
		},
		{
			"entry without description", "OPTIONS:",
			[]Entry{
				{Lead: "--flag", Text: ""},
			},
			80, 30,
			`OPTIONS:
    --flag
`,
		},
		{
			"subcommand listing", "SUBCOMMANDS:",
			[]Entry{
				{Lead: "show", Text: "Show the current state."},
				{Lead: "remote add NAME", Text: "Add a remote."},
			},
			80, 30,
			`SUBCOMMANDS:
    show               Show the current state.
    remote add NAME    Add a remote.
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Section(tt.header, tt.entries, tt.maxLineLen, tt.minBlockLen)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlock(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		indent     int
		maxLineLen int
		expected   string
	}{
		{"empty", "", 0, 80, ""},
		{"single line", "Usage: prog [options] args...", 0, 80, "Usage: prog [options] args...\n"},
		{"wrap with indent", "aaa bbb ccc", 2, 9, "  aaa bbb\n  ccc\n"},
		{"blank paragraph keeps an empty line", "a\n\nb", 2, 80, "  a\n\n  b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Block(tt.text, tt.indent, tt.maxLineLen)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
