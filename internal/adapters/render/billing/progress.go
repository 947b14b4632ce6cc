package billing

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// elapsedAfter is how long a call runs before the elapsed time is shown.
const elapsedAfter = 2 * time.Second

type callDoneMsg struct {
	err error
}

// progressModel shows a spinner while one backend call runs.
type progressModel struct {
	spinner spinner.Model
	styles  styles
	label   string
	call    tea.Cmd
	started time.Time
	now     func() time.Time
	err     error
	done    bool
}

func newProgressModel(label string, call tea.Cmd, now func() time.Time) progressModel {
	st := newStyles()
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(st.spinner)),
		styles:  st,
		label:   label,
		call:    call,
		started: now(),
		now:     now,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}

	line := m.spinner.View() + " " + m.styles.detail.Render(m.label)
	if elapsed := m.now().Sub(m.started); elapsed >= elapsedAfter {
		line += " " + m.styles.faint.Render(fmt.Sprintf("(%ds)", int(elapsed.Seconds())))
	}
	return line
}

// RunWithProgress runs call while a spinner labelled label is drawn on out,
// and returns the call's error. The spinner line is cleared when the call
// returns.
func RunWithProgress(ctx context.Context, out io.Writer, label string, call func(context.Context) error) error {
	p := tea.NewProgram(
		newProgressModel(label, func() tea.Msg { return callDoneMsg{err: call(ctx)} }, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return ErrUnexpectedRenderModel
	}
	return result.err
}
