package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/xhuliohasa/flight-search-engine/internal/app"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		application, err := app.NewWithConfig(cfg)
		if err != nil {
			return err
		}

		<-application.Start()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		application.Stop(ctx)

		slog.Info("server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
