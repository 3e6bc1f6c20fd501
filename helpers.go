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

	"github.com/go-optargs/optargs/internal/value"
	"github.com/go-optargs/optargs/text"
)

// RequiredArg - Pop the next operand off args, erroring when there is
// none. The name labels the operand in the diagnostic. Meant for command
// handlers unpacking the operands a session left behind:
//
//	name, args, err := optargs.RequiredArg(p.Args(), "REPOSITORY")
func RequiredArg(args []string, name string) (string, []string, error) {
	if len(args) < 1 {
		return "", args, fmt.Errorf(text.ErrorMissingRequiredArgument+"%w", name, ErrorMissingArgument)
	}
	return args[0], args[1:], nil
}

// RequiredArgInt - Same as RequiredArg but converts the operand to an int.
func RequiredArgInt(args []string, name string) (int, []string, error) {
	arg, rest, err := RequiredArg(args, name)
	if err != nil {
		return 0, rest, err
	}
	v, err := value.Convert(value.Int, arg)
	if err != nil {
		return 0, rest, fmt.Errorf(text.ErrorConvertRequiredArgument+"%w", name, arg, value.Int, ErrorConversion)
	}
	return v.(int), rest, nil
}

// RequiredArgFloat64 - Same as RequiredArg but converts the operand to a
// float64.
func RequiredArgFloat64(args []string, name string) (float64, []string, error) {
	arg, rest, err := RequiredArg(args, name)
	if err != nil {
		return 0, rest, err
	}
	v, err := value.Convert(value.Float64, arg)
	if err != nil {
		return 0, rest, fmt.Errorf(text.ErrorConvertRequiredArgument+"%w", name, arg, value.Float64, ErrorConversion)
	}
	return v.(float64), rest, nil
}
