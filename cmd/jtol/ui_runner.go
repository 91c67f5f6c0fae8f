package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/kzachmann/VSJumpToLine/internal/diag"
	"github.com/kzachmann/VSJumpToLine/internal/engine"
	"github.com/kzachmann/VSJumpToLine/internal/ui"
)

// runProcessWithUI runs the engine pass in the background while the
// wait spinner owns the terminal. The spinner is purely cosmetic: it
// only learns about completion through the closed channel.
func runProcessWithUI(title string, r io.Reader, opts engine.Options, log hclog.Logger) (*diag.List, error) {
	done := make(chan struct{})

	var list *diag.List
	g := new(errgroup.Group)
	g.Go(func() error {
		defer close(done)
		var err error
		list, err = engine.Process(r, opts, log)
		return err
	})

	program := tea.NewProgram(ui.NewWaitModel(title, done), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if uiErr != nil {
		return nil, uiErr
	}
	return list, nil
}
