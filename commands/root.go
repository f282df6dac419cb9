package commands

import (
	"fmt"

	"postboard/app/config"

	"github.com/spf13/cobra"
)

const cliVersion = "1.0.0"

// Execute runs the postboard command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree around a default configuration.
func NewRootCommand() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:          "postboard",
		Short:        "Posts backend and terminal posts screen",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		serveCmd(&cfg),
		screenCmd(&cfg),
		dbCmd(&cfg),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "postboard version %s\n", cliVersion)
		},
	}
}
