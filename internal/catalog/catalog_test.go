package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentbatch/internal/catalog"
	"github.com/rshade/contentbatch/internal/content"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()
	require.Equal(t, 4, c.Len())

	p, ok := c.Get("pillar_002")
	require.True(t, ok)
	assert.Equal(t, "SEO Best Practices", p.Name)
	assert.Len(t, p.Keywords, 3)
}

func TestResolve(t *testing.T) {
	c := catalog.Default()

	topics, unknown := c.Resolve([]string{"pillar_003", "missing", "pillar_001", "pillar_003", " "})

	require.Len(t, topics, 2)
	assert.Equal(t, "pillar_003", topics[0].ID, "selection order is preserved")
	assert.Equal(t, "pillar_001", topics[1].ID)
	assert.Equal(t, []string{"missing"}, unknown)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c := catalog.Default()
	p, _ := c.Get("pillar_001")
	p.Keywords[0] = "mutated"

	again, _ := c.Get("pillar_001")
	assert.Equal(t, "marketing automation", again.Keywords[0])
}

func TestList_SortedByPriority(t *testing.T) {
	c, err := catalog.New([]content.Topic{
		{ID: "z", Name: "Zed"},
		{ID: "b", Name: "Bee", Priority: 2},
		{ID: "a", Name: "Ay", Priority: 1},
		{ID: "c", Name: "Cee", Priority: 2},
	})
	require.NoError(t, err)

	var ids []string
	for _, p := range c.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "z"}, ids)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		pillars []content.Topic
	}{
		{name: "missing id", pillars: []content.Topic{{Name: "x"}}},
		{name: "missing name", pillars: []content.Topic{{ID: "x"}}},
		{name: "duplicate", pillars: []content.Topic{{ID: "x", Name: "a"}, {ID: "x", Name: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.New(tt.pillars)
			require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pillars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pillars:
  - id: email
    name: Email Marketing
    keywords: [newsletters, drip campaigns]
    priority: 1
  - id: video
    name: Video Marketing
    keywords: [shorts]
`), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	p, ok := c.Get("email")
	require.True(t, ok)
	assert.Equal(t, []string{"newsletters", "drip campaigns"}, p.Keywords)
}

func TestLoad_Errors(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pillars: {"), 0o600))
	_, err = catalog.Load(path)
	require.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	c, err := catalog.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())
}
