package batch

import (
	"math"
	"sync"
	"time"

	"github.com/rshade/contentbatch/internal/content"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// ProgressState is an immutable view of a run's progress, published after
// every task.
type ProgressState struct {
	// Completed counts attempted tasks, successful or not.
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	// Percent is round(Completed / Total * 100).
	Percent int `json:"percent"`

	// Done is true once every task has been attempted.
	Done bool `json:"done"`

	// Task is the task whose completion produced this state. Zero for the
	// state published by an empty run.
	Task content.Task `json:"-"`

	// TaskErr is the failure of Task, if it failed.
	TaskErr error `json:"-"`

	ElapsedTime time.Duration `json:"elapsed_ns"`

	// Remaining extrapolates the average task duration over the tasks left.
	// Zero before the first task completes and once the run is done.
	Remaining time.Duration `json:"remaining_ns"`
}

// Progress tracks completion of a single run.
type Progress struct {
	// TotalTasks is fixed when the run starts.
	TotalTasks int

	CompletedTasks int
	Succeeded      int
	Failed         int

	// StartTime is when the run started.
	StartTime time.Time

	mu sync.RWMutex
}

// NewProgress creates a tracker for totalTasks tasks.
func NewProgress(totalTasks int) *Progress {
	return &Progress{
		TotalTasks: totalTasks,
		StartTime:  time.Now(),
	}
}

// AddCompleted records one attempted task.
func (p *Progress) AddCompleted(succeeded bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.CompletedTasks++
	if succeeded {
		p.Succeeded++
	} else {
		p.Failed++
	}
}

// Snapshot returns the current state, attributing it to task.
func (p *Progress) Snapshot(task content.Task, taskErr error) ProgressState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	elapsed := time.Since(p.StartTime)
	return ProgressState{
		Completed:   p.CompletedTasks,
		Total:       p.TotalTasks,
		Succeeded:   p.Succeeded,
		Failed:      p.Failed,
		Percent:     percent(p.CompletedTasks, p.TotalTasks),
		Done:        p.CompletedTasks >= p.TotalTasks,
		Task:        task,
		TaskErr:     taskErr,
		ElapsedTime: elapsed,
		Remaining:   remaining(elapsed, p.CompletedTasks, p.TotalTasks),
	}
}

// remaining extrapolates the average duration of completed tasks over the
// tasks left.
func remaining(elapsed time.Duration, completed, total int) time.Duration {
	if completed <= 0 || completed >= total {
		return 0
	}
	avgPerTask := elapsed / time.Duration(completed)
	return avgPerTask * time.Duration(total-completed)
}

// percent computes round(completed / total * 100).
func percent(completed, total int) int {
	if total <= 0 {
		return percentMultiplier
	}
	return int(math.Round(float64(completed) / float64(total) * percentMultiplier))
}
