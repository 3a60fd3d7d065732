package root

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command for artistctl. Subcommands are attached in wire.go.
var rootCmd = &cobra.Command{
	Use:           "artistctl",
	Short:         "Artistly record store utilities",
	Long:          "Inspect, reset, seed and migrate the record store behind the Artistly API. Configuration is read from the same environment as the server.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the mutable root command for wiring from subpackages.
func Root() *cobra.Command {
	return rootCmd
}
