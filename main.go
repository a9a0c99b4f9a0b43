package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/msomdec/course-api/internal/command"
)

func main() {
	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := command.RootCommand().ExecuteContext(ctx); err != nil {
		// Cobra has already printed the error.
		stop()
		os.Exit(1)
	}
}
