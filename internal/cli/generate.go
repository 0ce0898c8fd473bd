package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/contentbatch/internal/config"
	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/engine/batch"
	"github.com/rshade/contentbatch/internal/generator"
	"github.com/rshade/contentbatch/internal/queue"
	"github.com/rshade/contentbatch/internal/tui"
)

// GenerateParams holds the parameters for the generate command.
type GenerateParams struct {
	Selection SelectionParams
	Endpoint  string
	Audience  string
	Output    string
	Plain     bool
	DryRun    bool
}

// NewGenerateCmd creates the generate command, which runs one generation
// request per selected topic and content type and queues the results.
func NewGenerateCmd() *cobra.Command {
	var params GenerateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate content for the selected topic pillars",
		Long: `Generates one draft per selected topic pillar and content type.

Tasks run one at a time, pillars in selection order and content types in the
order blog, short-video, social-reel, social-story. A failed task is reported
and skipped; the rest of the batch continues. Successful drafts enter the review
queue as pending items (or approved, when campaign.require_approval is false).`,
		Example: `  # Default content types for two pillars
  contentbatch generate --topic pillar_001 --topic pillar_002

  # Every pillar, blogs only, as NDJSON
  contentbatch generate --all-topics --type blog --output ndjson

  # Show what would run without calling the service
  contentbatch generate --all-topics --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeGenerate(cmd, params)
		},
	}

	bindSelectionFlags(cmd, &params.Selection)
	cmd.Flags().StringVar(&params.Endpoint, "endpoint", "", "generation service URL (default from config)")
	cmd.Flags().StringVar(&params.Audience, "audience", "", "target audience sent with every request (default from config)")
	cmd.Flags().StringVar(&params.Output, "output", "",
		"output format: table, json, ndjson, yaml (default from config)")
	cmd.Flags().BoolVar(&params.Plain, "plain", false, "disable the interactive progress view")
	cmd.Flags().BoolVar(&params.DryRun, "dry-run", false, "print the batch size and exit")

	return cmd
}

func executeGenerate(cmd *cobra.Command, params GenerateParams) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	format := params.Output
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	if !isValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	sel, err := resolveSelection(ctx, cmd.ErrOrStderr(), cfg, params.Selection)
	if err != nil {
		return err
	}
	if len(sel.Topics) == 0 {
		return errNoTopicsSelected
	}
	if sel.Flags.Count() == 0 {
		return errNoTypesSelected
	}

	audience := params.Audience
	if audience == "" {
		audience = cfg.Generator.TargetAudience
	}

	plan, err := batch.NewPlan(sel.Topics, sel.Flags, audience)
	if err != nil {
		return err
	}

	if params.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would generate %d items (%d topics × %d types) for %q\n",
			plan.Total(), plan.TopicCount(), len(plan.Types()), audience)
		return nil
	}

	endpoint := params.Endpoint
	if endpoint == "" {
		endpoint = cfg.Generator.Endpoint
	}
	client, err := generator.New(generator.Options{
		Endpoint:      endpoint,
		Timeout:       cfg.Generator.Timeout,
		APIToken:      cfg.Generator.APIToken,
		UseSupervisor: cfg.Generator.UseSupervisor,
	})
	if err != nil {
		return err
	}

	orch, err := batch.NewOrchestrator(client.Generate)
	if err != nil {
		return err
	}

	logger.Info().
		Ctx(ctx).
		Str("operation", "generate").
		Str("endpoint", endpoint).
		Int("topics", plan.TopicCount()).
		Int("total", plan.Total()).
		Msg("starting batch generation")

	var report *batch.Report[content.Draft]
	var runErr error
	if useProgressView(params, format) {
		report, runErr = runBatchInteractive(ctx, orch, plan)
	} else {
		orch.WithProgressCallback(func(s batch.ProgressState) {
			cmd.PrintErrln(tui.RenderProgressLine(s))
		})
		report, runErr = orch.Run(ctx, plan)
	}
	if report == nil {
		return runErr
	}

	q := queue.New(queue.WithAutoApprove(!cfg.Campaign.RequireApproval))
	items := q.Merge(report.Results, time.Now())

	if err := renderBatch(cmd.OutOrStdout(), format, batchOutput{
		RunID:     report.RunID,
		Total:     report.Total,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		Cancelled: report.Cancelled,
		Duration:  roundDuration(report.Duration()),
		Items:     items,
		Queue:     q.Counts(),
	}); err != nil {
		return err
	}

	return runErr
}

// useProgressView reports whether the interactive view can own the terminal.
// Logs written to stderr would draw over it, so those runs print plain
// progress lines instead.
func useProgressView(params GenerateParams, format string) bool {
	return !params.Plain && !logsOnStderr && format == formatTable &&
		isTerminal(os.Stdout) && isTerminal(os.Stderr)
}

// runBatchInteractive runs the batch and the progress view side by side.
// Quitting the view cancels the run after the in-flight task.
func runBatchInteractive(
	ctx context.Context,
	orch *batch.Orchestrator[content.Draft],
	plan *batch.Plan,
) (*batch.Report[content.Draft], error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(tui.NewBatchModel(plan.Total(), cancel))
	orch.WithProgressCallback(func(s batch.ProgressState) {
		p.Send(tui.TaskCompletedMsg{State: s, Task: s.Task, Err: s.TaskErr})
	})

	var (
		report *batch.Report[content.Draft]
		runErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		report, runErr = orch.Run(runCtx, plan)
		done := tui.BatchFinishedMsg{Total: plan.Total(), Err: runErr}
		if report != nil {
			done.Succeeded = report.Succeeded
			done.Cancelled = report.Cancelled
		}
		p.Send(done)
		return nil
	})
	g.Go(func() error {
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			cancel()
			return fmt.Errorf("running progress view: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, runErr
}
