package batch

import (
	"errors"
	"fmt"

	"github.com/rshade/contentbatch/internal/content"
)

// Configuration errors. Both wrap ErrConfiguration so callers can test for the
// whole class with errors.Is.
var (
	ErrConfiguration  = errors.New("batch configuration error")
	ErrNilRequestFunc = fmt.Errorf("%w: request function cannot be nil", ErrConfiguration)
	ErrInvalidTaskSet = fmt.Errorf("%w: invalid task set", ErrConfiguration)
)

// TaskError describes a single task that failed. It is recovered locally and
// handed to the failure observer; it never aborts a run.
type TaskError struct {
	// Index is the 0-based position of the task in the plan.
	Index int
	Task  content.Task
	Err   error
}

// Error implements error.
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d (%s) failed: %v", e.Index, e.Task.Key(), e.Err)
}

// Unwrap returns the underlying request error.
func (e *TaskError) Unwrap() error {
	return e.Err
}
