package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScanInfo describes one file processed while loading a corpus.
type ScanInfo struct {
	File   string
	Parsed bool
}

// SpinnerShouldShow returns true if the spinner should be displayed.
// The spinner is hidden for quiet mode, JSON output, or non-TTY (piped)
// output.
func SpinnerShouldShow(quiet, json, nonTTY bool) bool {
	return !quiet && !json && !nonTTY
}

// SpinnerRun shows a progress spinner labeled with label while scanFn
// runs. scanFn receives a callback to report each processed file;
// SpinnerRun blocks until scanFn returns.
func SpinnerRun(label string, scanFn func(onFile func(ScanInfo))) error {
	m := newSpinnerModel(label)
	p := tea.NewProgram(m)

	done := make(chan struct{})
	go func() {
		scanFn(func(info ScanInfo) {
			p.Send(spinnerFileMsg(info))
		})
		p.Send(spinnerDoneMsg{})
		close(done)
	}()

	_, err := p.Run()
	<-done
	if err != nil {
		return fmt.Errorf("running spinner: %w", err)
	}
	return nil
}

// spinnerFileMsg is sent to the model as each file completes.
type spinnerFileMsg ScanInfo

// spinnerDoneMsg is sent when the whole scan is finished.
type spinnerDoneMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	label    string
	parsed   int
	skipped  int
	quitting bool
}

var spinnerSkipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return spinnerModel{
		spinner: s,
		label:   label,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerFileMsg:
		if msg.Parsed {
			m.parsed++
		} else {
			m.skipped++
		}
		return m, nil

	case spinnerDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m spinnerModel) View() string {
	// When done, return empty — the spinner is transient progress UI.
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.label)
	fmt.Fprintf(&b, " (%d parsed", m.parsed)
	if m.skipped > 0 {
		b.WriteString(", ")
		b.WriteString(spinnerSkipStyle.Render(fmt.Sprintf("%d skipped", m.skipped)))
	}
	b.WriteString(")")
	return b.String()
}
