package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root, opts := newRootCmd()
	err := execute(ctx, root, opts)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
