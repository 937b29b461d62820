package main

import (
	"errors"
	"fmt"

	"airportmind/internal/core/model"
	"airportmind/internal/storage"

	"github.com/spf13/cobra"
)

func newConfigCommand(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}
			err = storage.SaveConfig(configPath, model.DefaultConfig(), force)
			if errors.Is(err, storage.ErrConfigExists) {
				return fmt.Errorf("%s already exists, pass --force to overwrite", configPath)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, pathCmd)
	return configCmd
}
