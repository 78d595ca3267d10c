package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vertextoedge/violent-cleanup/internal/cli"
)

// version is set via ldflags at build time
var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, version)
	stop()
	os.Exit(code)
}
