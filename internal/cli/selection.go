package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/contentbatch/internal/catalog"
	"github.com/rshade/contentbatch/internal/config"
	"github.com/rshade/contentbatch/internal/content"
)

var (
	errNoTopicsSelected = errors.New("no topics selected: use --topic or --all-topics")
	errNoTypesSelected  = errors.New("no content types selected: use --type")
	errTopicsConflict   = errors.New("--topic and --all-topics are mutually exclusive")
)

// SelectionParams holds the topic and content type selection shared by
// generate and estimate.
type SelectionParams struct {
	Topics      []string
	AllTopics   bool
	Types       []string
	CatalogPath string
}

// bindSelectionFlags registers the selection flags on cmd.
func bindSelectionFlags(cmd *cobra.Command, p *SelectionParams) {
	cmd.Flags().StringSliceVar(&p.Topics, "topic", nil, "topic pillar ID to include (repeatable)")
	cmd.Flags().BoolVar(&p.AllTopics, "all-topics", false, "include every pillar in the catalog")
	cmd.Flags().StringSliceVar(&p.Types, "type", nil,
		"content type to generate: blog, short-video, social-reel, social-story (default from config)")
	cmd.Flags().StringVar(&p.CatalogPath, "catalog", "", "YAML topic catalog (default: built-in pillars)")
}

// selection is a resolved topic and content type selection.
type selection struct {
	Topics  []content.Topic
	Unknown []string
	Flags   content.TypeFlags
}

// resolveSelection loads the catalog and resolves the requested topics and
// types. Unknown topic IDs are skipped with a warning.
func resolveSelection(
	ctx context.Context,
	errOut io.Writer,
	cfg *config.Config,
	p SelectionParams,
) (*selection, error) {
	if p.AllTopics && len(p.Topics) > 0 {
		return nil, errTopicsConflict
	}

	path := p.CatalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	cat, err := catalog.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("loading topic catalog: %w", err)
	}

	sel := &selection{}
	if p.AllTopics {
		sel.Topics = cat.List()
	} else {
		sel.Topics, sel.Unknown = cat.Resolve(p.Topics)
	}

	if len(sel.Unknown) > 0 {
		logger.Warn().
			Ctx(ctx).
			Str("operation", "resolve_topics").
			Strs("unknown", sel.Unknown).
			Msg("skipping unknown topic pillars")
		_, _ = fmt.Fprintf(errOut, "Warning: skipping unknown topics: %s\n", strings.Join(sel.Unknown, ", "))
	}

	if len(p.Types) == 0 {
		sel.Flags = cfg.DefaultTypeFlags()
	} else {
		sel.Flags, err = content.ParseTypeFlags(p.Types)
		if err != nil {
			return nil, err
		}
	}

	return sel, nil
}
