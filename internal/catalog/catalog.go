// Package catalog holds the topic pillars content can be generated for.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/contentbatch/internal/content"
)

// ErrInvalidCatalog is returned when a catalog file has missing or duplicate IDs.
var ErrInvalidCatalog = errors.New("invalid topic catalog")

// Catalog is an immutable set of topic pillars indexed by ID.
type Catalog struct {
	pillars []content.Topic
	byID    map[string]int
}

type catalogFile struct {
	Pillars []content.Topic `yaml:"pillars"`
}

// New builds a catalog from pillars. IDs and names are required and IDs must
// be unique.
func New(pillars []content.Topic) (*Catalog, error) {
	c := &Catalog{
		pillars: make([]content.Topic, 0, len(pillars)),
		byID:    make(map[string]int, len(pillars)),
	}
	for i, p := range pillars {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("%w: pillar %d has no id", ErrInvalidCatalog, i)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: pillar %q has no name", ErrInvalidCatalog, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate pillar id %q", ErrInvalidCatalog, p.ID)
		}
		c.byID[p.ID] = len(c.pillars)
		c.pillars = append(c.pillars, p.Clone())
	}
	return c, nil
}

// Load reads a YAML catalog file of the form:
//
//	pillars:
//	  - id: pillar_001
//	    name: Digital Marketing Automation
//	    keywords: [marketing automation, AI marketing]
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return New(f.Pillars)
}

// LoadOrDefault loads path, or returns the built-in catalog when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Len returns the number of pillars.
func (c *Catalog) Len() int {
	return len(c.pillars)
}

// Get returns the pillar with id.
func (c *Catalog) Get(id string) (content.Topic, bool) {
	i, ok := c.byID[id]
	if !ok {
		return content.Topic{}, false
	}
	return c.pillars[i].Clone(), true
}

// List returns every pillar sorted by priority, then ID. Pillars without a
// priority sort last.
func (c *Catalog) List() []content.Topic {
	out := make([]content.Topic, 0, len(c.pillars))
	for _, p := range c.pillars {
		out = append(out, p.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Priority, out[j].Priority
		if (pi == 0) != (pj == 0) {
			return pj == 0
		}
		if pi != pj {
			return pi < pj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Resolve maps selected IDs to topics in selection order. Repeated IDs are
// collapsed to their first occurrence. IDs not in the catalog are skipped and
// returned as unknown.
func (c *Catalog) Resolve(ids []string) (topics []content.Topic, unknown []string) {
	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		topic, ok := c.Get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		topics = append(topics, topic)
	}
	return topics, unknown
}
