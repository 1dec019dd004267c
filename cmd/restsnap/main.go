package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/restsnap/restsnap/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(cli.ExitCodeFromError(err))
}
