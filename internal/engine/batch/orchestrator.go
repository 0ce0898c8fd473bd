package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/logging"
)

// RequestFunc performs the generation call for a single task. Timeouts and
// transport policy belong to the implementation, not the orchestrator.
type RequestFunc[R any] func(ctx context.Context, task content.Task) (R, error)

// ProgressCallback is invoked after each task completes, before the next task
// starts.
type ProgressCallback func(state ProgressState)

// FailureObserver receives every task failure. Failures are always logged;
// the observer is an additional hook.
type FailureObserver func(ctx context.Context, failure *TaskError)

// Report is the outcome of a run.
type Report[R any] struct {
	RunID string

	// Results holds successful results in task-execution order.
	Results []R

	Total     int
	Attempted int
	Succeeded int
	Failed    int

	// Cancelled is true when the context was cancelled before every task was
	// attempted.
	Cancelled bool

	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the run took.
func (r *Report[R]) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Orchestrator executes plans sequentially against a request function.
// An Orchestrator must not run two plans concurrently.
type Orchestrator[R any] struct {
	request    RequestFunc[R]
	onProgress ProgressCallback
	onFailure  FailureObserver
}

// NewOrchestrator creates an orchestrator for the given request function.
func NewOrchestrator[R any](request RequestFunc[R]) (*Orchestrator[R], error) {
	if request == nil {
		return nil, ErrNilRequestFunc
	}
	return &Orchestrator[R]{request: request}, nil
}

// WithProgressCallback sets the progress callback.
func (o *Orchestrator[R]) WithProgressCallback(callback ProgressCallback) *Orchestrator[R] {
	o.onProgress = callback
	return o
}

// WithFailureObserver sets the failure observer.
func (o *Orchestrator[R]) WithFailureObserver(observer FailureObserver) *Orchestrator[R] {
	o.onFailure = observer
	return o
}

// Run executes every task in plan, one at a time, in plan order.
//
// Individual task failures are recovered, reported to the failure observer and
// excluded from the results. If ctx is cancelled, no further tasks are started
// and the partial report is returned together with the context error.
func (o *Orchestrator[R]) Run(ctx context.Context, plan *Plan) (*Report[R], error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: plan cannot be nil", ErrInvalidTaskSet)
	}

	log := runLogger(ctx)
	progress := NewProgress(plan.Total())
	report := &Report[R]{
		RunID:     ulid.Make().String(),
		Total:     plan.Total(),
		Results:   make([]R, 0, plan.Total()),
		StartedAt: progress.StartTime,
	}

	log.Info().
		Ctx(ctx).
		Str("operation", "run").
		Str("run_id", report.RunID).
		Int("topics", plan.TopicCount()).
		Int("content_types", len(plan.types)).
		Int("total", report.Total).
		Msg("batch run started")

	if plan.Total() == 0 {
		o.publish(progress.Snapshot(content.Task{}, nil))
		return o.finish(ctx, report), nil
	}

	for i, task := range plan.tasks {
		// Check for context cancellation
		if err := ctx.Err(); err != nil {
			report.Cancelled = true
			o.finish(ctx, report)
			return report, fmt.Errorf("batch run cancelled after %d of %d tasks: %w",
				report.Attempted, report.Total, err)
		}

		result, err := o.call(ctx, task)
		report.Attempted++

		var taskErr error
		if err != nil {
			failure := &TaskError{Index: i, Task: task, Err: err}
			taskErr = failure
			report.Failed++
			o.observe(ctx, report.RunID, failure)
		} else {
			report.Results = append(report.Results, result)
			report.Succeeded++
		}

		progress.AddCompleted(err == nil)
		state := progress.Snapshot(task, taskErr)

		log.Debug().
			Ctx(ctx).
			Str("run_id", report.RunID).
			Str("topic", task.Topic.ID).
			Str("content_type", string(task.Type)).
			Int("completed", state.Completed).
			Int("total", state.Total).
			Int("percent", state.Percent).
			Msg("task completed")

		o.publish(state)
	}

	return o.finish(ctx, report), nil
}

// call invokes the request function, converting a panic into a task error so
// one misbehaving task cannot take down the run.
func (o *Orchestrator[R]) call(ctx context.Context, task content.Task) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("request panicked: %v", r)
		}
	}()
	return o.request(ctx, task)
}

func runLogger(ctx context.Context) zerolog.Logger {
	return logging.ComponentLogger(*logging.FromContext(ctx), "batch")
}

func (o *Orchestrator[R]) observe(ctx context.Context, runID string, failure *TaskError) {
	log := runLogger(ctx)
	log.Warn().
		Ctx(ctx).
		Str("run_id", runID).
		Str("topic", failure.Task.Topic.ID).
		Str("content_type", string(failure.Task.Type)).
		Int("index", failure.Index).
		Err(failure.Err).
		Msg("generation task failed")

	if o.onFailure != nil {
		o.onFailure(ctx, failure)
	}
}

func (o *Orchestrator[R]) publish(state ProgressState) {
	if o.onProgress != nil {
		o.onProgress(state)
	}
}

func (o *Orchestrator[R]) finish(ctx context.Context, report *Report[R]) *Report[R] {
	report.FinishedAt = time.Now()

	log := runLogger(ctx)
	log.Info().
		Ctx(ctx).
		Str("operation", "run").
		Str("run_id", report.RunID).
		Int("attempted", report.Attempted).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Bool("cancelled", report.Cancelled).
		Dur("duration", report.Duration()).
		Msg("batch run finished")

	return report
}

// Run is a convenience wrapper that snapshots topics and flags into a plan and
// executes it. A nil request function fails before any task is attempted.
func Run[R any](
	ctx context.Context,
	topics []content.Topic,
	flags content.TypeFlags,
	audience string,
	request RequestFunc[R],
	onProgress ProgressCallback,
) (*Report[R], error) {
	orch, err := NewOrchestrator(request)
	if err != nil {
		return nil, err
	}
	plan, err := NewPlan(topics, flags, audience)
	if err != nil {
		return nil, err
	}
	return orch.WithProgressCallback(onProgress).Run(ctx, plan)
}
