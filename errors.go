// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

import (
	"errors"
	"fmt"
)

// ErrorHelpCalled - Indicates the help has been handled.
// Mostly useful from a CallVoid handler that prints help, so callers can
// exit cleanly with `errors.Is(err, optargs.ErrorHelpCalled)`.
var ErrorHelpCalled = fmt.Errorf("help called")

// ErrorParsing - Indicates that there was an error with cli args parsing.
// In continue-on-error mode it is the aggregate reported at the end of the
// session; individual failures remain reachable through errors.Is.
var ErrorParsing = errors.New("")

// The sentinels below carry no text of their own; the text lives in the
// wrapping error built from the text package templates. Match them with
// errors.Is.

// ErrorUnknownOption - An option token matched no descriptor.
var ErrorUnknownOption = errors.New("")

// ErrorUnknownSubcommand - An operand matched no subcommand in a table that declares subcommands.
var ErrorUnknownSubcommand = errors.New("")

// ErrorMissingArgument - A required option-argument was absent.
var ErrorMissingArgument = errors.New("")

// ErrorUnexpectedArgument - A no-argument option received an attached argument.
var ErrorUnexpectedArgument = errors.New("")

// ErrorConversion - An option-argument could not be converted to its target type.
var ErrorConversion = errors.New("")

// ErrorRange - A converted value or text length fell outside the declared bounds.
var ErrorRange = errors.New("")

// ErrorListCount - A delimiter split produced a value count outside the declared bounds.
var ErrorListCount = errors.New("")

// ErrorCapacity - Appending would exceed the declared destination capacity.
var ErrorCapacity = errors.New("")

// ErrorAction - A caller registered handler returned an error, or dispatch
// found none registered.
var ErrorAction = errors.New("")
