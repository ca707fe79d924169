package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xhuliohasa/flight-search-engine/internal/app"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch"
	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/usecase"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgconfig"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkglog"
)

const defaultConfigPath = "config/config.yaml"

// global flags
var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "flightsearch",
	Short: "Search flights through the Amadeus self-service API",
	Long: `flightsearch looks up airports and cities, searches one-way flight offers
and serves both over a JSON HTTP API.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		pkglog.Init(cmd.ErrOrStderr(), logFormat)
		pkglog.SetLevel(logLevel)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("execution failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log format (json, text)")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

// loadConfig reads the config file and reinstalls the logger on logOut using
// app.log.level and app.log.format. Explicit --log-level and --log-format
// flags win over the file.
func loadConfig(cmd *cobra.Command, logOut io.Writer) (pkgconfig.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		pkglog.SetLevel(logLevel)
	}

	format := logFormat
	if f := cfg.GetString("app.log.format"); f != "" && !cmd.Flags().Changed("log-format") {
		format = f
	}
	pkglog.Init(logOut, format)

	slog.Debug("config loaded", "path", configPath, "log_level", pkglog.Level(), "log_format", format)
	return cfg, nil
}

// loadUsecase logs to stderr, keeping stdout for tables.
func loadUsecase(cmd *cobra.Command) (*usecase.Usecase, error) {
	cfg, err := loadConfig(cmd, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return flightsearch.NewUsecase(cfg)
}
