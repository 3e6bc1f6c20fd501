// This file is part of optargs.
//
// Copyright (C) 2024-2026  The optargs Authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// These examples demonstrate subcommand trees with optargs.
package optargs_test

import (
	"context"
	"fmt"

	"github.com/go-optargs/optargs"
)

func ExampleOptSet_ParseDispatch() {
	var global, quiet bool
	list := optargs.New(
		optargs.Opt{ID: 'q', Name: "quiet", Action: optargs.SetTrue, Dest: &quiet},
	)
	listRun := func(ctx context.Context, sub *optargs.OptSet, args []string) error {
		operands, err := sub.Parse(args)
		if err != nil {
			return err
		}
		fmt.Println("listing:", operands, "quiet:", quiet)
		return nil
	}
	root := optargs.New(
		optargs.Opt{ID: 'g', Name: "global", Action: optargs.SetTrue, Dest: &global},
		optargs.Opt{ID: -1, Name: "list", Sub: list, Run: listRun, Description: "List things."},
	)
	_, err := root.ParseDispatch(context.Background(), []string{"-g", "list", "-q", "widgets"})
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println("global:", global)
	// Output:
	// listing: [widgets] quiet: true
	// global: true
}

func ExampleParser_Sub() {
	// Transfers are caller driven: the parent session ends and the caller
	// decides when and how to parse the child.
	var all bool
	child := optargs.New(
		optargs.Opt{ID: 'a', Name: "all", Action: optargs.SetTrue, Dest: &all},
	)
	root := optargs.New(
		optargs.Opt{ID: -1, Name: "show", Sub: child},
	)
	p := root.Parser([]string{"show", "-a", "main"})
	for p.Scan() {
		if p.ID() < 0 {
			c := p.Sub().Parser(p.Remaining())
			for c.Scan() {
			}
			fmt.Println("show:", c.Args(), "all:", all)
		}
	}
	// Output:
	// show: [main] all: true
}
