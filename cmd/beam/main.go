// Command beam normalises, Kekulizes, validates and summarises SMILES.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/beam/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
