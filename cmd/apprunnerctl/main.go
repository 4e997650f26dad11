package main

import (
	"context"
	"os"
	"os/signal"

	"apprunnerctl/internal/cli"
)

const version = "0.1.0"

var execute = cli.Execute
var exit = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], cli.DefaultDeps(), version)
	stop()
	exit(code)
}
