package batch

import (
	"fmt"
	"strings"

	"github.com/rshade/contentbatch/internal/content"
)

// Plan is the immutable task snapshot a run executes. It is captured before the
// first task starts, so changes to the caller's selection cannot affect a run
// in flight.
type Plan struct {
	tasks  []content.Task
	topics []content.Topic
	types  []content.ContentType
}

// Estimate returns the number of tasks a run over topics and flags would
// attempt. It has no side effects.
func Estimate(topics []content.Topic, flags content.TypeFlags) int {
	return len(topics) * flags.Count()
}

// NewPlan snapshots topics and enabled content types into a task list. Topics
// keep the order given; content types follow canonical order. Every topic must
// have an ID and a name, and IDs must be unique.
func NewPlan(topics []content.Topic, flags content.TypeFlags, audience string) (*Plan, error) {
	seen := make(map[string]struct{}, len(topics))
	snapshot := make([]content.Topic, 0, len(topics))
	for i, t := range topics {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("%w: topic %d has no id", ErrInvalidTaskSet, i)
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: topic %q has no name", ErrInvalidTaskSet, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate topic id %q", ErrInvalidTaskSet, t.ID)
		}
		seen[t.ID] = struct{}{}
		snapshot = append(snapshot, t.Clone())
	}

	types := flags.Enabled()
	tasks := make([]content.Task, 0, len(snapshot)*len(types))
	for _, topic := range snapshot {
		for _, ct := range types {
			tasks = append(tasks, content.Task{
				Topic:          topic,
				Type:           ct,
				TargetAudience: audience,
			})
		}
	}

	return &Plan{
		tasks:  tasks,
		topics: snapshot,
		types:  types,
	}, nil
}

// Total returns the number of tasks in the plan.
func (p *Plan) Total() int {
	return len(p.tasks)
}

// Tasks returns a copy of the planned tasks in execution order.
func (p *Plan) Tasks() []content.Task {
	out := make([]content.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// TopicCount returns the number of topics in the snapshot.
func (p *Plan) TopicCount() int {
	return len(p.topics)
}

// Types returns the enabled content types in canonical order.
func (p *Plan) Types() []content.ContentType {
	out := make([]content.ContentType, len(p.types))
	copy(out, p.types)
	return out
}
