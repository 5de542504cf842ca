// Package main provides the entry point for webinarctl
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/webinar-hub/internal/cli"
	timeProvider "github.com/amirhossein-jamali/webinar-hub/internal/infrastructure/adapter/time"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(timeProvider.NewRealTimeProvider()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
