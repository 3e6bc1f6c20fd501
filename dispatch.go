// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optargs

import (
	"context"
	"fmt"

	"github.com/go-optargs/optargs/text"
)

// CommandFn - handler attached to a subcommand declaration through
// Opt.Run. It receives the subcommand's own table and the arguments that
// followed the subcommand name; parsing them (or not) is the handler's
// business. The engine never recurses on its own.
type CommandFn func(ctx context.Context, sub *OptSet, args []string) error

// ParseDispatch - drain a session and, when it ended in a transfer, hand
// control to the subcommand's Run handler. Without a transfer it behaves
// like Parse. The handler's error is returned as is.
func (set *OptSet) ParseDispatch(ctx context.Context, args []string) ([]string, error) {
	p := set.Parser(args)
	for p.Scan() {
	}
	if err := p.Err(); err != nil {
		return p.Args(), err
	}
	if p.subOpt == nil {
		return p.Args(), nil
	}
	sub := p.subOpt
	if sub.Run == nil {
		return p.Remaining(), fmt.Errorf(text.ErrorMissingHandler+"%w", sub.Name, ErrorAction)
	}
	Logger.Printf("dispatch '%s' with %v", sub.Name, p.Remaining())
	return p.Remaining(), sub.Run(ctx, sub.Sub, p.Remaining())
}
