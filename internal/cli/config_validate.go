package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/contentbatch/internal/catalog"
	"github.com/rshade/contentbatch/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration (file plus environment overrides).

This includes:
- Generator endpoint, timeout and target audience
- Default content types
- Output and logging formats
- The topic catalog file, if catalog.path is set`,
		Example: `  # Validate current configuration
  contentbatch config validate

  # Validate and show detailed information
  contentbatch config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	pillars := catalog.Default().Len()
	if cfg.Catalog.Path != "" {
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		pillars = cat.Len()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration is valid")
	if verbose {
		fmt.Fprintf(out, "  Config file:    %s\n", cfg.Path())
		fmt.Fprintf(out, "  Endpoint:       %s\n", cfg.Generator.Endpoint)
		fmt.Fprintf(out, "  Timeout:        %s\n", cfg.Generator.Timeout)
		fmt.Fprintf(out, "  Content types:  %s\n", cfg.DefaultTypeFlags())
		fmt.Fprintf(out, "  Topic pillars:  %d\n", pillars)
		fmt.Fprintf(out, "  Output format:  %s\n", cfg.Output.DefaultFormat)
	}
	return nil
}
