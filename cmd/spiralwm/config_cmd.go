package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1broseidon/spiralwm/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
		Args:  cobra.NoArgs,
	}

	var path string
	configCmd.PersistentFlags().StringVar(&path, "path", "", "config file (default $XDG_CONFIG_HOME/spiralwm/config.yaml)")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := loadConfig(path)
			if err != nil {
				return err
			}
			if res.File == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no config file, defaults are valid")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", res.File)
			return nil
		},
	}

	var defaults bool
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if !defaults {
				res, err := loadConfig(path)
				if err != nil {
					return err
				}
				cfg = res.Config
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	printCmd.Flags().BoolVar(&defaults, "defaults", false, "print the built-in defaults instead")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	configCmd.AddCommand(validateCmd, printCmd, pathCmd)
	return configCmd
}
