package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hsaberwal/serunner/internal/interfaces/cli/migrate"
	"github.com/hsaberwal/serunner/internal/interfaces/cli/server"
	"github.com/hsaberwal/serunner/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "serunner",
		Short: "SERunner - sound engineer setup service",
		Long:  `SERunner matches, reuses and generates mixer setups for live events, and learns from operator corrections.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
