package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vangoui",
		Short: "Server-rendered UI components for Go",
		Long: `vangoui is a UI component kit rendered entirely on the server.

It ships buttons, cards, form fields, modals, dropdowns, and a
notification center with a toast viewport. The preview server renders
the full gallery and drives toasts live over a WebSocket channel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
