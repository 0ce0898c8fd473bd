package content

// Topic is a topic pillar that content is generated for.
type Topic struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Priority    int      `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Clone returns a deep copy of the topic so later edits to the source keyword
// slice cannot leak into a running batch.
func (t Topic) Clone() Topic {
	c := t
	if t.Keywords != nil {
		c.Keywords = make([]string, len(t.Keywords))
		copy(c.Keywords, t.Keywords)
	}
	return c
}

// Task is one unit of generation work: a topic paired with a content type.
type Task struct {
	Topic          Topic       `json:"topic"`
	Type           ContentType `json:"content_type"`
	TargetAudience string      `json:"target_audience"`
}

// Key returns a stable identifier for the task, e.g. "pillar_001/blog".
func (t Task) Key() string {
	return t.Topic.ID + "/" + string(t.Type)
}
