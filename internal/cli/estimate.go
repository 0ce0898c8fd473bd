package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/contentbatch/internal/config"
	"github.com/rshade/contentbatch/internal/engine/batch"
)

// EstimateParams holds the parameters for the estimate command.
type EstimateParams struct {
	Selection SelectionParams
	Output    string
}

// estimateResult is the JSON form of an estimate.
type estimateResult struct {
	Topics int      `json:"topics"`
	Types  []string `json:"types"`
	Total  int      `json:"total"`
}

// NewEstimateCmd creates the estimate command, which reports how many items a
// batch would produce without calling the generation service.
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Show how many items a batch would generate",
		Example: `  # Default content types for one pillar
  contentbatch estimate --topic pillar_002

  # Every pillar, two content types, as JSON
  contentbatch estimate --all-topics --type blog,social-story --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	bindSelectionFlags(cmd, &params.Selection)
	cmd.Flags().StringVar(&params.Output, "output", "table", "output format: table, json")

	return cmd
}

func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	cfg := config.GetGlobalConfig()
	sel, err := resolveSelection(cmd.Context(), cmd.ErrOrStderr(), cfg, params.Selection)
	if err != nil {
		return err
	}

	total := batch.Estimate(sel.Topics, sel.Flags)

	switch params.Output {
	case "json":
		types := make([]string, 0, sel.Flags.Count())
		for _, ct := range sel.Flags.Enabled() {
			types = append(types, string(ct))
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(estimateResult{Topics: len(sel.Topics), Types: types, Total: total})
	case "table", "":
		p := message.NewPrinter(language.English)
		_, err := p.Fprintf(cmd.OutOrStdout(), "%d topics × %d types = %d items\n",
			len(sel.Topics), sel.Flags.Count(), total)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", params.Output)
	}
}
