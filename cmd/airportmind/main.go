// Package main provides the CLI entry point for AirportMind.
package main

import (
	"fmt"
	"os"

	"airportmind/internal/core/model"
	"airportmind/internal/logging"
	"airportmind/internal/platform"
	"airportmind/internal/storage"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	appName  = "AirportMind"
	appID    = "com.airportmind.app"
	appTitle = "AirportMind"
)

var version = "dev"

type options struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "airportmind",
		Short:         "AirportMind - a calm companion for anxious travellers",
		Long:          "Guided 4-7-8 breathing, ambient sounds, a mood check-in and an anxiety log.",
		Version:       version,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := loadRuntime(opts, logging.NewConsole)
			if err != nil {
				return err
			}
			return runDesktop(cmd.Context(), config, logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yaml (defaults to the OS config directory)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newBreatheCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	return rootCmd
}

func resolveConfigPath(opts *options) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return storage.ResolveConfigPath(platform.NewService(), appName)
}

func loadRuntime(opts *options, newLogger func(model.LoggingConfig) zerolog.Logger) (model.Config, zerolog.Logger, error) {
	configPath, err := resolveConfigPath(opts)
	if err != nil {
		return model.Config{}, zerolog.Nop(), err
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return model.Config{}, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		config.Logging.Level = opts.logLevel
	}
	logger := newLogger(config.Logging)
	logger.Debug().Str("path", configPath).Msg("config loaded")
	return config, logger, nil
}
