package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dirsync/internal/app"
	"dirsync/internal/settings"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := settings.Command(func(ctx context.Context, stg *settings.Settings) error {
		return app.Run(ctx, stg, os.Stdout)
	})
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		if errors.Is(err, settings.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
