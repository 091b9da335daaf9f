// Command nowplaying logs the song shown on a station page to a remote endpoint.
//
// Without WATCH_SCHEDULE it logs once and exits, like clicking the bookmarklet.
// With it, it keeps polling and logs each new song.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nowplaying-logger/internal/di"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nowplaying: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	return application.Run(ctx)
}
