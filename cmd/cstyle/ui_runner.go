package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cstyle/internal/driver"
	"cstyle/internal/ui"
)

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI formats paths in the background while a Bubble Tea program
// renders per-file progress. The program quits when the batch is done.
func runFormatWithUI(ctx context.Context, title string, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan formatOutcome, 1)

	go func() {
		reqOpts := opts
		reqOpts.Progress = func(ev driver.ProgressEvent) {
			events <- ev
		}
		res, err := driver.FormatPaths(ctx, paths, reqOpts)
		outcomeCh <- formatOutcome{results: res, err: err}
		close(events)
	}()

	// файлы из каталогов модель узнаёт из событий queued
	model := ui.NewProgressModel(title, nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
