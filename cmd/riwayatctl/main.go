// Command riwayatctl inspects the maneuver logbook from a terminal.
//
// It talks to the database directly using the server configuration
// (CONFIG_PATH or environment), so it is meant for operators with
// database access.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
