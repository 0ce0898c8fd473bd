package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/contentbatch/internal/content"
)

// Output formats.
const (
	formatTable  = "table"
	formatJSON   = "json"
	formatNDJSON = "ndjson"
	formatYAML   = "yaml"
)

const (
	// tabwriterPadding is the minimum padding between table columns.
	tabwriterPadding = 2
	maxTitleWidth    = 48
)

// isValidOutputFormat reports whether format is supported by renderBatch.
func isValidOutputFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatNDJSON, formatYAML:
		return true
	}
	return false
}

// batchOutput is the structured form of a finished batch.
type batchOutput struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	Total     int            `json:"total" yaml:"total"`
	Succeeded int            `json:"succeeded" yaml:"succeeded"`
	Failed    int            `json:"failed" yaml:"failed"`
	Cancelled bool           `json:"cancelled" yaml:"cancelled"`
	Duration  string         `json:"duration" yaml:"duration"`
	Items     []content.Item `json:"items" yaml:"items"`

	// Queue counts the review queue's items per status after the merge.
	Queue map[content.Status]int `json:"queue" yaml:"queue"`
}

// queueStatusOrder is the order statuses appear in the table summary.
//
//nolint:gochecknoglobals // read-only lookup
var queueStatusOrder = []content.Status{
	content.StatusDraft,
	content.StatusPending,
	content.StatusApproved,
	content.StatusRejected,
	content.StatusPublished,
}

// renderBatch writes a finished batch in the requested format.
func renderBatch(w io.Writer, format string, out batchOutput) error {
	if out.Items == nil {
		out.Items = []content.Item{}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case formatNDJSON:
		for _, item := range out.Items {
			data, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("marshaling item: %w", err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return fmt.Errorf("writing NDJSON line: %w", err)
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return nil
	case formatTable:
		if err := renderItemTable(w, out.Items); err != nil {
			return err
		}
		return renderSummary(w, out)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderItemTable(w io.Writer, items []content.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No content generated.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTYPE\tPILLAR\tTITLE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Status, it.Type, it.Metadata.TopicPillar, truncate(it.Title, maxTitleWidth))
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, out batchOutput) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "\nGenerated %d of %d items", out.Succeeded, out.Total); err != nil {
		return err
	}
	if out.Failed > 0 {
		_, _ = p.Fprintf(w, " (%d failed)", out.Failed)
	}
	if out.Cancelled {
		_, _ = fmt.Fprint(w, " - cancelled")
	}
	if _, err := fmt.Fprintf(w, " in %s\n", out.Duration); err != nil {
		return err
	}

	var parts []string
	for _, status := range queueStatusOrder {
		if n := out.Queue[status]; n > 0 {
			parts = append(parts, p.Sprintf("%d %s", n, status))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Queue: %s\n", strings.Join(parts, ", "))
	return err
}

// renderTopics writes catalog pillars in the requested format.
func renderTopics(w io.Writer, format string, topics []content.Topic) error {
	if topics == nil {
		topics = []content.Topic{}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(topics)
	case formatNDJSON:
		for _, t := range topics {
			data, err := json.Marshal(t)
			if err != nil {
				return fmt.Errorf("marshaling topic: %w", err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(map[string][]content.Topic{"pillars": topics})
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		fmt.Fprintln(tw, "ID\tPRIORITY\tNAME\tKEYWORDS")
		for _, t := range topics {
			priority := "-"
			if t.Priority > 0 {
				priority = strconv.Itoa(t.Priority)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.ID, priority, t.Name, strings.Join(t.Keywords, ", "))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// roundDuration trims a duration for display.
func roundDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
