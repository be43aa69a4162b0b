// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// run the command
	if err := Execute(ctx, version, os.Args[1:]); err != nil {
		cancel()
		os.Exit(1)
	}
}
