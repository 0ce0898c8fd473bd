package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/engine/batch"
)

const percentScale = 100.0

// View renders the batch progress view (Bubble Tea interface).
func (m BatchModel) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("BATCH CONTENT GENERATION"))
	b.WriteString("\n\n")

	switch m.state {
	case BatchStateRunning:
		b.WriteString(m.spinner.View())
		b.WriteString(" Generating ")
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", m.total)))
		b.WriteString(" items")
	case BatchStateCancelling:
		b.WriteString(m.spinner.View())
		b.WriteString(WarningStyle.Render(" Cancelling after the current item..."))
	case BatchStateDone:
		b.WriteString(m.renderSummary())
	}
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(float64(m.percent) / percentScale))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%d/%d completed, %d failed", m.completed, m.total, m.failed)))
	if m.state != BatchStateDone {
		if eta := remainingLabel(m.remaining); eta != "" {
			b.WriteString(SubtleStyle.Render(", " + eta))
		}
	}

	if m.current != "" && m.state != BatchStateDone {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("last: " + m.current))
	}

	if len(m.recent) > 0 {
		lines := make([]string, 0, len(m.recent))
		for _, r := range m.recent {
			lines = append(lines, ErrorStyle.Render("✗ "+r))
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if m.state != BatchStateDone {
		b.WriteString("\n\n")
		b.WriteString(SubtleStyle.Render("q: cancel"))
	}

	return BoxStyle.Width(max(m.width-borderPadding, 0)).Render(b.String()) + "\n"
}

func (m BatchModel) renderSummary() string {
	f := m.finished
	switch {
	case f.Err != nil && !f.Cancelled:
		return ErrorStyle.Render("Batch failed: " + f.Err.Error())
	case f.Cancelled:
		return WarningStyle.Render(fmt.Sprintf("Cancelled: generated %d of %d items", f.Succeeded, f.Total))
	default:
		return SuccessStyle.Render(fmt.Sprintf("✓ Generated %d of %d items", f.Succeeded, f.Total))
	}
}

// RenderProgressLine renders a single plain-text progress line for non-interactive output.
func RenderProgressLine(state batch.ProgressState) string {
	width := len(fmt.Sprintf("%d", state.Total))
	prefix := fmt.Sprintf("[%*d/%d] %3d%%", width, state.Completed, state.Total, state.Percent)

	if state.Total == 0 {
		return prefix + " nothing to generate"
	}

	label := taskLabel(state.Task)
	line := fmt.Sprintf("%s %s ok", prefix, label)
	if state.TaskErr != nil {
		line = fmt.Sprintf("%s %s failed: %s", prefix, label, causeMessage(state.TaskErr))
	}
	if !state.Done {
		if eta := remainingLabel(state.Remaining); eta != "" {
			line += ", " + eta
		}
	}
	return line
}

// remainingLabel formats an ETA rounded to the second; empty when unknown.
func remainingLabel(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return ""
	}
	return "about " + d.String() + " remaining"
}

func taskLabel(task content.Task) string {
	name := task.Topic.Name
	if name == "" {
		name = task.Topic.ID
	}
	return fmt.Sprintf("%s (%s)", name, task.Type)
}

// causeMessage strips the task wrapper so the label is not repeated.
func causeMessage(err error) string {
	var taskErr *batch.TaskError
	if errors.As(err, &taskErr) && taskErr.Err != nil {
		return taskErr.Err.Error()
	}
	return err.Error()
}
