package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()

	cmd := &cobra.Command{
		Use:     "gateway",
		Short:   "Card payment gateway",
		Version: Version,
		// Running without a subcommand starts the server.
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(serve)
	cmd.AddCommand(openapiCmd())

	return cmd
}
