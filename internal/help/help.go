// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - two column, word wrapped rendering of option and
// subcommand listings.
//
// Geometry: entries are indented four spaces; the description block starts
// at a column derived from the widest lead, clamped so the block keeps at
// least minBlockLen columns out of maxLineLen. Wrapping breaks only at
// whitespace and never inside a word: a word wider than the block is placed
// on its own line unbroken.
package help

import (
	"strings"
)

// Entry - one two column row: lead holds the option or subcommand synopsis,
// text holds the description. Text may contain newlines, each forcing a
// break.
type Entry struct {
	Lead string
	Text string
}

// Section - renders a header line followed by two column entries.
// Returns an empty string when there are no entries.
func Section(header string, entries []Entry, maxLineLen, minBlockLen int) string {
	if len(entries) == 0 {
		return ""
	}
	indent := 4 + longestLead(entries) + 4
	if indent > maxLineLen-minBlockLen {
		indent = maxLineLen - minBlockLen
	}
	var out strings.Builder
	out.WriteString(header)
	out.WriteString("\n")
	for _, e := range entries {
		lead := "    " + e.Lead
		if e.Text == "" {
			out.WriteString(lead)
			out.WriteString("\n")
			continue
		}
		lines := wrapLines(e.Text, maxLineLen-indent)
		if len(lead)+2 > indent {
			// Lead too wide for its row, start the block on the next line.
			out.WriteString(lead)
			out.WriteString("\n")
			for _, l := range lines {
				writeBlockLine(&out, indent, l)
			}
			continue
		}
		out.WriteString(lead)
		if lines[0] != "" {
			out.WriteString(pad(indent - len(lead)))
			out.WriteString(lines[0])
		}
		out.WriteString("\n")
		for _, l := range lines[1:] {
			writeBlockLine(&out, indent, l)
		}
	}
	return out.String()
}

// Block - word wraps free text into lines of at most maxLineLen, every line
// carrying the given indent. Used for header and footer text.
func Block(text string, indent, maxLineLen int) string {
	if text == "" {
		return ""
	}
	var out strings.Builder
	for _, l := range wrapLines(text, maxLineLen-indent) {
		writeBlockLine(&out, indent, l)
	}
	return out.String()
}

// writeBlockLine - one wrapped line with indent; blank lines carry no padding.
func writeBlockLine(out *strings.Builder, indent int, line string) {
	if line == "" {
		out.WriteString("\n")
		return
	}
	out.WriteString(pad(indent))
	out.WriteString(line)
	out.WriteString("\n")
}

// wrapLines - breaks text into lines of at most width, only at whitespace.
// Words wider than width stand alone unbroken. Each embedded newline starts
// a fresh line.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	lines := []string{}
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) <= width {
				line += " " + w
			} else {
				lines = append(lines, line)
				line = w
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func longestLead(entries []Entry) int {
	longest := 0
	for _, e := range entries {
		if len(e.Lead) > longest {
			longest = len(e.Lead)
		}
	}
	return longest
}

func pad(n int) string {
	if n < 1 {
		return ""
	}
	return strings.Repeat(" ", n)
}
