package commands

import (
	"net/http"

	"postboard/app/config"
	"postboard/app/gateway"
	"postboard/app/screen"
	"postboard/app/tui"

	"github.com/spf13/cobra"
)

func screenCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Open the posts screen against a running backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := cfg.ScreenLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			gw, err := gateway.New(
				gateway.NewRPCClient(cfg.ServerURL, &http.Client{}),
				gateway.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			logger.Info("opening posts screen", "server", cfg.ServerURL)
			return tui.Run(cmd.Context(), gw, tui.Options{
				Platform: platformOf(*cfg),
				Logger:   logger,
			})
		},
	}
	cmd.Flags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "backend base URL")
	cmd.Flags().StringVar(&cfg.Platform, "platform", cfg.Platform, "platform to present as (Android, iOS); detected when empty")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	return cmd
}

func platformOf(cfg config.Config) screen.Platform {
	if cfg.Platform == "" {
		return screen.DetectPlatform()
	}
	return screen.ParsePlatform(cfg.Platform)
}
