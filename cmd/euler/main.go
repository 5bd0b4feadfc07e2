// Command euler runs the arithmetic exercises from the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/imorrison/euler/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand(os.Stdout, os.Stderr)
	cmd.SetContext(ctx)
	if err := cli.Execute(cmd); err != nil {
		stop()
		os.Exit(1)
	}
}
