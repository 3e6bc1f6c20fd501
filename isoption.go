// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

import "strings"

// tokenType - the shape of a command line token. Classification is purely
// textual; whether a name is known belongs to the matcher.
type tokenType int

const (
	// tokenOperand - anything that isn't option shaped.
	tokenOperand tokenType = iota
	// tokenTerminator - the literal "--"; everything after is operands.
	tokenTerminator
	// tokenDash - the literal "-", an operand by shape but reported to
	// the caller under the Dash identity.
	tokenDash
	// tokenLong - "--name" or "--name=value".
	tokenLong
	// tokenCluster - "-abc", one or more short names sharing a dash.
	tokenCluster
)

func classifyToken(tok string) tokenType {
	switch tok {
	case "--":
		return tokenTerminator
	case "-":
		return tokenDash
	}
	if strings.HasPrefix(tok, "--") {
		return tokenLong
	}
	if len(tok) > 1 && tok[0] == '-' {
		return tokenCluster
	}
	return tokenOperand
}

// splitLong - name and attached argument of a long token. The first '='
// separates them; "--name=" carries an attached empty argument, which is
// distinct from "--name" carrying none.
func splitLong(tok string) (name, arg string, hasArg bool) {
	return strings.Cut(tok[2:], "=")
}
