//go:build !(js || wasm)

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cottand/variance/cmd"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "variance [subcommand]",
	Short:        "variance infers the declaration-site variance of generic class parameters",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.InferCmd)
	rootCmd.AddCommand(cmd.WatchCmd)
	rootCmd.AddCommand(cmd.VersionCmd)
}
