// Command agrimartctl runs maintenance tasks against the agrimart database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"agrimart/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Console()
	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command_failed")
		os.Exit(1)
	}
}
