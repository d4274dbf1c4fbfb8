package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slateos/slate/core"
)

type installCapture struct {
	fractions []float64
	status    string
}

func (m *installCapture) Init() tea.Cmd { return nil }

func (m *installCapture) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case core.InstallProgressMsg:
		m.fractions = append(m.fractions, msg.Fraction)
	case core.StatusMsg:
		m.status = msg.Text
	}
	return m, nil
}

func (m *installCapture) View() string { return "" }

// The driver only reports progress and quits. The profile manifest is saved
// by the caller once the program has exited, so screen Apply calls never run
// concurrently with the encode.
func TestDriveInstallReportsProgressAndQuits(t *testing.T) {
	prog := tea.NewProgram(&installCapture{}, tea.WithInput(nil), tea.WithoutRenderer())
	go driveInstall(prog, time.Millisecond)

	final, err := prog.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := final.(*installCapture)
	if len(got.fractions) != 20 || got.fractions[len(got.fractions)-1] != 1 {
		t.Fatalf("progress ticks: %v", got.fractions)
	}
	if got.status != "Installation complete" {
		t.Fatalf("status: %q", got.status)
	}
}
