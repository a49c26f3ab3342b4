package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"javalex/internal/driver"
	"javalex/internal/source"
	"javalex/internal/ui"
)

type tokenizeOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runTokenizeWithUI гоняет TokenizeFiles в фоне, пока TUI рисует прогресс.
func runTokenizeWithUI(ctx context.Context, title string, files []string, opts driver.Options, jobs int) (*source.FileSet, []driver.TokenizeDirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeFiles(ctx, files, optsCopy, jobs)
		outcomeCh <- tokenizeOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// TUI мог выйти раньше (Ctrl+C), воркеры не должны встать на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
