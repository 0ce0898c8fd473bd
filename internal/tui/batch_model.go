package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/engine/batch"
)

// BatchState is the lifecycle of the batch view.
type BatchState int

const (
	// BatchStateRunning indicates tasks are still being generated.
	BatchStateRunning BatchState = iota
	// BatchStateCancelling indicates the user asked to stop and the in-flight task is finishing.
	BatchStateCancelling
	// BatchStateDone indicates the run finished.
	BatchStateDone
)

// TaskCompletedMsg is sent after every attempted task.
type TaskCompletedMsg struct {
	State batch.ProgressState
	Task  content.Task
	Err   error
}

// BatchFinishedMsg is sent once the run returns.
type BatchFinishedMsg struct {
	Succeeded int
	Total     int
	Cancelled bool
	Err       error
}

// BatchModel is the Bubble Tea model for the batch progress view. It only
// displays progress; the run itself is driven from outside via p.Send.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BatchModel struct {
	cancel context.CancelFunc

	state   BatchState
	spinner spinner.Model
	bar     progress.Model
	width   int

	total     int
	completed int
	succeeded int
	failed    int
	percent   int
	remaining time.Duration

	current string
	recent  []string

	finished BatchFinishedMsg
}

// NewBatchModel creates the batch view for a run of total tasks. cancel is
// invoked when the user presses q or ctrl+c.
func NewBatchModel(total int, cancel context.CancelFunc) BatchModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(HeaderStyle))
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth))

	return BatchModel{
		cancel:  cancel,
		state:   BatchStateRunning,
		spinner: s,
		bar:     bar,
		width:   defaultWidth,
		total:   total,
	}
}

// Init starts the spinner (Bubble Tea interface).
func (m BatchModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages (Bubble Tea interface).
func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(max(msg.Width-borderPadding*2, 10), maxBarWidth) //nolint:mnd // minimum bar width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TaskCompletedMsg:
		return m.handleTaskCompleted(msg), nil

	case BatchFinishedMsg:
		m.state = BatchStateDone
		m.finished = msg
		return m, tea.Quit

	case spinner.TickMsg:
		if m.state == BatchStateDone {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		switch m.state {
		case BatchStateRunning:
			m.state = BatchStateCancelling
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		case BatchStateCancelling:
			// Second press: stop waiting for the in-flight task.
			return m, tea.Quit
		case BatchStateDone:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m BatchModel) handleTaskCompleted(msg TaskCompletedMsg) BatchModel {
	m.completed = msg.State.Completed
	m.succeeded = msg.State.Succeeded
	m.failed = msg.State.Failed
	m.percent = msg.State.Percent
	m.remaining = msg.State.Remaining
	if msg.State.Total > 0 {
		m.total = msg.State.Total
	}
	m.current = taskLabel(msg.Task)

	if msg.Err != nil {
		m.recent = append(m.recent, m.current+": "+causeMessage(msg.Err))
		if len(m.recent) > maxRecentLines {
			m.recent = m.recent[len(m.recent)-maxRecentLines:]
		}
	}
	return m
}

// State returns the current lifecycle state.
func (m BatchModel) State() BatchState {
	return m.state
}

// Percent returns the last published completion percentage.
func (m BatchModel) Percent() int {
	return m.percent
}

// Finished returns the final message, valid once State is BatchStateDone.
func (m BatchModel) Finished() BatchFinishedMsg {
	return m.finished
}
