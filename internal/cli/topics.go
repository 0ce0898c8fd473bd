package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/contentbatch/internal/catalog"
	"github.com/rshade/contentbatch/internal/config"
)

// NewTopicsListCmd creates the topics list command.
func NewTopicsListCmd() *cobra.Command {
	var (
		catalogPath string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List topic pillars",
		Example: `  # Built-in pillars
  contentbatch topics list

  # A custom catalog as YAML
  contentbatch topics list --catalog pillars.yaml --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := catalogPath
			if path == "" {
				path = config.GetGlobalConfig().Catalog.Path
			}
			cat, err := catalog.LoadOrDefault(path)
			if err != nil {
				return err
			}

			format := output
			if format == "" {
				format = config.GetDefaultOutputFormat()
			}
			return renderTopics(cmd.OutOrStdout(), format, cat.List())
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML topic catalog (default: built-in pillars)")
	cmd.Flags().StringVar(&output, "output", "", "output format: table, json, ndjson, yaml (default from config)")

	return cmd
}
