package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/contentbatch/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.contentbatch/config.yaml with default values.
Set CONTENTBATCH_HOME to use a different directory.`,
		Example: `  # Create configuration
  contentbatch config init

  # Create configuration, overwriting existing
  contentbatch config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			path := filepath.Join(dir, "config.yaml")

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err := cfg.SaveTo(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized successfully\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}
