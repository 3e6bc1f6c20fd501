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
	"os"
	"os/signal"
	"syscall"

	"github.com/go-optargs/optargs/text"
)

// InterruptContext - Creates a top level context that listens to
// os.Interrupt, syscall.SIGHUP and syscall.SIGTERM and calls the CancelFunc
// if the signals are triggered. When the listener finishes its work, it
// sends a message to the done channel. Pairs with ParseDispatch, whose
// handlers receive the context.
//
// Use:
//
//	func main() { ...
//	ctx, cancel, done := optargs.InterruptContext()
//	defer func() { cancel(); <-done }()
//
// The interrupt notice is printed to Writer.
func InterruptContext() (ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	done = make(chan struct{}, 1)
	ctx, cancel = context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		defer func() {
			signal.Stop(signals)
			cancel()
			done <- struct{}{}
		}()
		select {
		case <-signals:
			fmt.Fprintf(Writer, "\n%s\n", text.MessageOnInterrupt)
		case <-ctx.Done():
		}
	}()
	return ctx, cancel, done
}
