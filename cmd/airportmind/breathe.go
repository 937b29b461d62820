package main

import (
	"fmt"
	"path/filepath"

	"airportmind/internal/core/breathing"
	"airportmind/internal/core/model"
	"airportmind/internal/logging"
	"airportmind/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const terminalLogName = "breathe.log"

func newBreatheCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "breathe",
		Short: "Run the 4-7-8 breathing guide in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}
			// The terminal is owned by the UI, so logs go to a file next to the config.
			closeLog := func() error { return nil }
			config, logger, err := loadRuntime(opts, func(logConfig model.LoggingConfig) zerolog.Logger {
				var fileLogger zerolog.Logger
				fileLogger, closeLog = logging.NewFile(logConfig, filepath.Join(filepath.Dir(configPath), terminalLogName))
				return fileLogger
			})
			if err != nil {
				return err
			}
			defer func() {
				_ = closeLog()
			}()

			timer := breathing.NewTimer()
			session := breathing.Open(cmd.Context(), timer, breathing.Config{TickInterval: config.Breathing.TickInterval})
			defer session.Close()

			events := timer.Subscribe(16)
			defer timer.Unsubscribe(events)

			logger.Info().Msg("terminal guide started")
			program := tea.NewProgram(terminal.NewModel(timer, events), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run terminal guide: %w", err)
			}
			logger.Info().Msg("terminal guide closed")
			return nil
		},
	}
}
