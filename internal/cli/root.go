package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/contentbatch/internal/config"
	"github.com/rshade/contentbatch/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// logsOnStderr is true when the command's logs go to stderr, which the
// interactive progress view also draws on.
var logsOnStderr bool //nolint:gochecknoglobals // Set once per command by setupLogging

// openLog is the log opened by the running command.
var openLog *logging.LogPathResult //nolint:gochecknoglobals // Closed by the cobra finalizer

var registerCloseLog sync.Once //nolint:gochecknoglobals // cobra finalizers are process-wide

// closeLog releases the log file once Execute returns. Cobra runs finalizers
// even when RunE fails.
func closeLog() {
	if openLog == nil {
		return
	}
	if err := openLog.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log file: %v\n", err)
	}
	openLog = nil
}

// NewRootCmd creates the root Cobra command for the contentbatch CLI.
func NewRootCmd(ver string) *cobra.Command {
	var overlayPath string

	registerCloseLog.Do(func() { cobra.OnFinalize(closeLog) })

	cmd := &cobra.Command{
		Use:           "contentbatch",
		Short:         "Batch content generation for topic pillars",
		Long:          "contentbatch: generate blog, video, reel and story drafts for every selected topic pillar",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if overlayPath != "" {
				if err := config.ShallowMergeYAML(config.GetGlobalConfig(), overlayPath); err != nil {
					return fmt.Errorf("applying --config: %w", err)
				}
			}

			closeLog()
			result := setupLogging(cmd)
			openLog = &result
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&overlayPath, "config", "",
		"YAML file whose sections replace those of the loaded configuration")
	cmd.AddCommand(NewGenerateCmd(), NewEstimateCmd(), newTopicsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Generate the default content types for two topic pillars
  contentbatch generate --topic pillar_001 --topic pillar_003

  # Generate every content type for every pillar as JSON
  contentbatch generate --all-topics --type blog,short-video,social-reel,social-story --output json

  # Preview how many items a batch would produce
  contentbatch estimate --all-topics --type blog

  # List the topic pillars of a custom catalog
  contentbatch topics list --catalog pillars.yaml

  # Point the generator at another service
  contentbatch config set generator.endpoint https://content.example.com/api/generate`

// newTopicsCmd creates the topics command group.
func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "topics", Short: "Topic pillar commands"}
	cmd.AddCommand(NewTopicsListCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
