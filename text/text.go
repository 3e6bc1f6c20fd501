// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Exported as variables so a program can reword them before building its
// option tables.
package text

// ErrorUnknownOption - Error to be shown when an unknown long option is passed. Expects the full token.
var ErrorUnknownOption = "Unknown option '%s'!"

// ErrorUnknownShortOption - Error to be shown when an unknown short option is found inside a cluster.
// Expects the character, its 1 based position and the full token.
var ErrorUnknownShortOption = "Unknown option '%c' at position %d in '%s'!"

// ErrorUnknownSubcommand - Error to be shown when an operand matches no subcommand.
var ErrorUnknownSubcommand = "Unknown subcommand '%s'!"

// ErrorMissingArgument - Error to be shown when an option requires an argument and none is given.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// ErrorUnexpectedArgument - Error to be shown when an option that takes no argument receives one.
var ErrorUnexpectedArgument = "Option '%s' doesn't allow an argument!"

// ErrorConvertArgument - Error to be shown when an option argument can't be converted to its target type.
// Expects the option name, the offending text and the target type name.
var ErrorConvertArgument = "Argument error for option '%s': can't convert '%s' to %s!"

// ErrorArgumentBelowMin - Error to be shown when a converted value is below the minimum bound.
var ErrorArgumentBelowMin = "Argument error for option '%s': '%s' is below the minimum of %v!"

// ErrorArgumentAboveMax - Error to be shown when a converted value is above the maximum bound.
var ErrorArgumentAboveMax = "Argument error for option '%s': '%s' is above the maximum of %v!"

// ErrorArgumentTooShort - Error to be shown when a text value is shorter than the minimum length.
var ErrorArgumentTooShort = "Argument error for option '%s': '%s' is shorter than %v characters!"

// ErrorArgumentTooLong - Error to be shown when a text value is longer than the maximum length.
var ErrorArgumentTooLong = "Argument error for option '%s': '%s' is longer than %v characters!"

// ErrorListTooFewValues - Error to be shown when a delimiter split list has too few values.
var ErrorListTooFewValues = "Argument error for option '%s': expected at least %d values, got %d!"

// ErrorListTooManyValues - Error to be shown when a delimiter split list has too many values.
var ErrorListTooManyValues = "Argument error for option '%s': expected at most %d values, got %d!"

// ErrorAppendCapacity - Error to be shown when appending would exceed the declared capacity.
var ErrorAppendCapacity = "Option '%s' accepts at most %d values!"

// ErrorActionFailed - Error prefix used when a handler returns an error.
var ErrorActionFailed = "Option '%s' handler failed: "

// ErrorMissingHandler - Error to be shown when dispatch reaches a subcommand without a handler.
var ErrorMissingHandler = "Subcommand '%s' has no registered handler!"

// ErrorParsingAggregate - Error summarizing a continue-on-error session.
var ErrorParsingAggregate = "Failed to parse arguments: %d errors:\n"

// ErrorMissingRequiredArgument - Error to be shown when a required operand is absent.
var ErrorMissingRequiredArgument = "Missing required argument '%s'!"

// ErrorConvertRequiredArgument - Error to be shown when a required operand can't be converted.
var ErrorConvertRequiredArgument = "Argument error for '%s': can't convert '%s' to %s!"

// MessageOnInterrupt - Message to be shown when an interrupt signal is received.
var MessageOnInterrupt = "Interrupt signal received"

// HelpOptionsHeader - Header for the option listing.
var HelpOptionsHeader = "OPTIONS:"

// HelpSubcommandsHeader - Header for the subcommand listing.
var HelpSubcommandsHeader = "SUBCOMMANDS:"
