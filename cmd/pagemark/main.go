// File: cmd/pagemark/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/pagemark/pagemark/cmd"
	"github.com/pagemark/pagemark/internal/observability"
)

// main is the entry point of the application.
func main() {
	// Listen for interrupt signals so long bounds runs shut down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cmd.Execute(ctx)
	observability.Sync()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
