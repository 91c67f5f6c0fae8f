// Package ui renders the cosmetic wait indicator shown while an input
// file is processed. It never touches engine state; the engine signals
// completion by closing the done channel.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type waitModel struct {
	title   string
	spinner spinner.Model
	done    <-chan struct{}
	quit    bool
}

type doneMsg struct{}

// NewWaitModel returns a Bubble Tea model that spins until done closes.
func NewWaitModel(title string, done <-chan struct{}) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return &waitModel{
		title:   title,
		spinner: sp,
		done:    done,
	}
}

func (m *waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForDone())
}

func (m *waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.quit = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.quit {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *waitModel) View() string {
	if m.quit {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

func (m *waitModel) waitForDone() tea.Cmd {
	return func() tea.Msg {
		<-m.done
		return doneMsg{}
	}
}
