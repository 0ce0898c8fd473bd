package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentbatch/internal/content"
	"github.com/rshade/contentbatch/internal/engine/batch"
)

func sampleTask(id string, ct content.ContentType) content.Task {
	return content.Task{Topic: content.Topic{ID: id, Name: "Topic " + id}, Type: ct}
}

func TestNewBatchModel(t *testing.T) {
	m := NewBatchModel(6, nil)

	assert.Equal(t, BatchStateRunning, m.State())
	assert.Equal(t, 6, m.total)
	assert.Zero(t, m.Percent())
	assert.NotNil(t, m.Init(), "spinner tick is scheduled")
}

func TestBatchModel_TaskCompleted(t *testing.T) {
	m := NewBatchModel(3, nil)
	task := sampleTask("p1", content.ContentTypeBlog)

	updated, cmd := m.Update(TaskCompletedMsg{
		State: batch.ProgressState{Completed: 1, Total: 3, Succeeded: 1, Percent: 33},
		Task:  task,
	})
	assert.Nil(t, cmd)

	bm, ok := updated.(BatchModel)
	require.True(t, ok)
	assert.Equal(t, 33, bm.Percent())
	assert.Equal(t, 1, bm.completed)
	assert.Empty(t, bm.recent)
	assert.Contains(t, bm.View(), "1/3 completed, 0 failed")
	assert.NotContains(t, bm.View(), "remaining")
}

func TestBatchModel_ShowsRemainingTime(t *testing.T) {
	m := NewBatchModel(4, nil)

	updated, _ := m.Update(TaskCompletedMsg{
		State: batch.ProgressState{Completed: 1, Total: 4, Succeeded: 1, Percent: 25, Remaining: 9 * time.Second},
		Task:  sampleTask("p1", content.ContentTypeBlog),
	})
	bm := updated.(BatchModel)
	assert.Equal(t, 9*time.Second, bm.remaining)
	assert.Contains(t, bm.View(), "about 9s remaining")

	updated, _ = bm.Update(BatchFinishedMsg{Succeeded: 4, Total: 4})
	assert.NotContains(t, updated.View(), "remaining")
}

func TestBatchModel_FailuresAreListed(t *testing.T) {
	m := NewBatchModel(10, nil)

	var model tea.Model = m
	for i := 0; i < 7; i++ {
		task := sampleTask(fmt.Sprintf("p%d", i), content.ContentTypeSocialReel)
		model, _ = model.Update(TaskCompletedMsg{
			State: batch.ProgressState{Completed: i + 1, Total: 10, Failed: i + 1},
			Task:  task,
			Err:   &batch.TaskError{Index: i, Task: task, Err: errors.New("timeout")},
		})
	}

	bm := model.(BatchModel)
	require.Len(t, bm.recent, maxRecentLines, "only the most recent failures are kept")
	assert.Equal(t, "Topic p6 (social-reel): timeout", bm.recent[len(bm.recent)-1])
	assert.Contains(t, bm.View(), "7 failed")
}

func TestBatchModel_CancelKey(t *testing.T) {
	cancelled := false
	m := NewBatchModel(4, func() { cancelled = true })

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd, "first press waits for the run to stop")
	assert.True(t, cancelled)

	bm := updated.(BatchModel)
	assert.Equal(t, BatchStateCancelling, bm.State())
	assert.Contains(t, bm.View(), "Cancelling")

	_, cmd = bm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBatchModel_Finished(t *testing.T) {
	m := NewBatchModel(4, nil)

	updated, cmd := m.Update(BatchFinishedMsg{Succeeded: 3, Total: 4})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	bm := updated.(BatchModel)
	assert.Equal(t, BatchStateDone, bm.State())
	assert.Equal(t, 3, bm.Finished().Succeeded)
	assert.Contains(t, bm.View(), "Generated 3 of 4 items")
	assert.NotContains(t, bm.View(), "q: cancel")
}

func TestBatchModel_FinishedCancelled(t *testing.T) {
	m := NewBatchModel(4, nil)
	updated, _ := m.Update(BatchFinishedMsg{Succeeded: 1, Total: 4, Cancelled: true, Err: context.Canceled})

	assert.Contains(t, updated.View(), "Cancelled: generated 1 of 4 items")
}

func TestBatchModel_WindowSize(t *testing.T) {
	m := NewBatchModel(1, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	bm := updated.(BatchModel)
	assert.Equal(t, 40, bm.width)
	assert.Equal(t, 32, bm.bar.Width)

	updated, _ = bm.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, maxBarWidth, updated.(BatchModel).bar.Width)
}

func TestRenderProgressLine(t *testing.T) {
	tests := []struct {
		name  string
		state batch.ProgressState
		want  string
	}{
		{
			name:  "success",
			state: batch.ProgressState{Completed: 3, Total: 12, Percent: 25, Task: sampleTask("p1", content.ContentTypeBlog)},
			want:  "[ 3/12]  25% Topic p1 (blog) ok",
		},
		{
			name: "failure",
			state: batch.ProgressState{
				Completed: 1, Total: 2, Percent: 50,
				Task:    sampleTask("p2", content.ContentTypeSocialStory),
				TaskErr: &batch.TaskError{Err: errors.New("status 503")},
			},
			want: "[1/2]  50% Topic p2 (social-story) failed: status 503",
		},
		{
			name:  "empty run",
			state: batch.ProgressState{Percent: 100, Done: true},
			want:  "[0/0] 100% nothing to generate",
		},
		{
			name: "with remaining time",
			state: batch.ProgressState{
				Completed: 1, Total: 4, Percent: 25, Remaining: 4500 * time.Millisecond,
				Task: sampleTask("p1", content.ContentTypeBlog),
			},
			want: "[1/4]  25% Topic p1 (blog) ok, about 5s remaining",
		},
		{
			name: "done hides remaining time",
			state: batch.ProgressState{
				Completed: 4, Total: 4, Percent: 100, Done: true, Remaining: time.Second,
				Task: sampleTask("p4", content.ContentTypeBlog),
			},
			want: "[4/4] 100% Topic p4 (blog) ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderProgressLine(tt.state))
		})
	}
}
