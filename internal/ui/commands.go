package ui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/kpumuk/lazyplot/internal/dashboard"
	"github.com/kpumuk/lazyplot/internal/ingest"
	"github.com/kpumuk/lazyplot/internal/preset"
)

// startupTaskMsg fires when the delay of a startup task has elapsed.
type startupTaskMsg struct {
	task dashboard.Task
}

// startupDoneMsg fires after the last startup task.
type startupDoneMsg struct{}

// fileReadMsg carries the outcome of reading one imported file.
type fileReadMsg struct {
	path   string
	result ingest.Result
	err    error
}

// clipboardMsg reports a failed clipboard write.
type clipboardMsg struct {
	err error
}

// styleSavedMsg carries the outcome of a preset store write.
type styleSavedMsg struct {
	err error
}

// styleLoadedMsg carries the outcome of a preset store read.
type styleLoadedMsg struct {
	preset preset.Preset
	ok     bool
	err    error
}

// nextStartupCmd schedules the next startup task, or the completion message
// when the schedule is exhausted.
func nextStartupCmd(s *dashboard.Scheduler) tea.Cmd {
	t, ok := s.Next()
	if !ok {
		return func() tea.Msg { return startupDoneMsg{} }
	}
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return startupTaskMsg{task: t}
	})
}

func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		r, err := ingest.ReadFile(path)
		return fileReadMsg{path: path, result: r, err: err}
	}
}

func readFilesCmd(paths []string) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(paths))
	for _, p := range paths {
		cmds = append(cmds, readFileCmd(p))
	}
	return tea.Batch(cmds...)
}

func saveStyleCmd(ctx context.Context, save func(context.Context) error) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return styleSavedMsg{err: save(ctx)}
	}
}

func loadStyleCmd(ctx context.Context, load func(context.Context) (preset.Preset, bool, error)) tea.Cmd {
	return func() tea.Msg {
		p, ok, err := load(ctx)
		return styleLoadedMsg{preset: p, ok: ok, err: err}
	}
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return clipboardMsg{err: err}
		}
		return clipboardMsg{}
	}
}

// defaultClipboard writes to the system clipboard.
func defaultClipboard(text string) error {
	return clipboard.WriteAll(text)
}
