// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optargs - getopt style command line parser built around declarative
option tables and an incremental scan loop.

A table is a list of Opt declarations, each pairing an identity code with a
long name, an action and a typed destination. The table is immutable once
built; parsing happens in a Parser session that walks the argument vector
match by match and leaves the operands compacted at the front of the slice,
the way classic getopt leaves argv.

# Features

• Match by `--long` name, by short name, or by short name clusters (`-abc`).

• Attached arguments with `--name=value` and `-fvalue`, or taken from the
following token with `--name value` and `-f value`.

• Arguments after `=` may start with a dash: `--string=--hello`, `--int=-3`.

• `--` ends option parsing; everything after is operands.

• The lonesome dash `-` is reported under its own identity, for commands
that read STDIN when given `-` as a file.

• Actions per option: set/clear/toggle a bool, increment/decrement a
counter, store a value, append to a slice, or invoke a callback. A nil
action reports the match and leaves the handling to the caller's switch.

• Typed conversion: string, int, uint, int64, uint64, float64, byte sizes
("42 MB", "64KiB") and durations ("1h30m"), with optional min/max bounds
(text length for strings, seconds for durations).

• One occurrence, many values: a delimiter set splits `--item=a,b,c` into a
value list, with optional per occurrence count bounds.

• Append destinations can cap their total size; exceeding the cap is an
error, never a silent truncation.

• Optional arguments bind only when attached, otherwise a declared default;
they never swallow the following token.

• Subcommands end the session and hand back the child table and the
remaining arguments; nothing recurses unless the caller says so.
ParseDispatch runs a declared handler, Dispatch style.

• `Called()` and `CalledAs()` report whether and under which spelling an
option matched.

• Halt on the first error or print-and-continue with an aggregate at the
end, per table.

• Automated two column help with wrapped descriptions, nested subcommand
listings and configurable layout, plus free header and footer text.

• Errors carry sentinel values (ErrorUnknownOption, ErrorConversion, ...)
matchable with errors.Is, and user facing templates live in the text
subpackage for overriding and internationalization.

• An OptSet is safe to share: every Parser carries its own state. The
package level Init/Parse wrapper trades that away for brevity.

# Panic

The library panics when the programmer (not the end user):

• Declares two options with the same identity code, short or long name.

• Declares a destination whose type does not match the option's type, or an
action without its required handler or destination.

• Declares list bounds without delimiters, a capacity without append, or a
default on a required argument.
*/
package optargs
