package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sparkbar/internal/cli"
	sperrors "github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
			observability.LogHooks{Logger: c.Logger}.Install()
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode separates bad input (2) from everything else (1).
func exitCode(err error) int {
	switch sperrors.GetCode(err) {
	case "", sperrors.ErrCodeInternal:
		return 1
	default:
		return 2
	}
}
