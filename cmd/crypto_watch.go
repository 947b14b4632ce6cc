package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	billingview "github.com/bnema/files-billing-cli/internal/adapters/render/billing"
	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const defaultWatchPoll = 10 * time.Second

type countdownMsg struct {
	remaining time.Duration
}

type pollMsg struct{}

type refreshedMsg struct {
	view application.CryptoView
	err  error
}

type cryptoWatchModel struct {
	ctx   context.Context
	flow  *application.CryptoFlow
	poll  time.Duration
	view  application.CryptoView
	err   error
	done  bool
	final error
}

func newCryptoWatchModel(ctx context.Context, flow *application.CryptoFlow, poll time.Duration) cryptoWatchModel {
	return cryptoWatchModel{ctx: ctx, flow: flow, poll: poll, view: flow.View(ctx)}
}

func (m cryptoWatchModel) Init() tea.Cmd {
	return m.refresh
}

func (m cryptoWatchModel) refresh() tea.Msg {
	_, err := m.flow.Refresh(m.ctx)
	return refreshedMsg{view: m.flow.View(m.ctx), err: err}
}

func (m cryptoWatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case countdownMsg:
		m.view.Remaining = msg.remaining
		m.view.Progress = domain.ProgressPercent(msg.remaining)
		m.view.Expired = msg.remaining == 0
		if m.view.Expired && m.view.State != application.CryptoSettled {
			m.done = true
			m.final = domain.ErrPaymentExpired
			return m, tea.Quit
		}
		return m, nil
	case pollMsg:
		return m, m.refresh
	case refreshedMsg:
		m.view = msg.view
		m.err = msg.err
		if m.view.State == application.CryptoSettled {
			m.done = true
			return m, tea.Quit
		}
		return m, tea.Tick(m.poll, func(time.Time) tea.Msg { return pollMsg{} })
	default:
		return m, nil
	}
}

func (m cryptoWatchModel) View() string {
	panel := billingview.CryptoPanel(m.view)
	if m.err != nil {
		panel += "\n" + application.FormatError(m.err)
	}
	if m.done {
		return panel + "\n"
	}
	return panel + "\n\nq quit"
}

func newCryptoWatchCmd(app *app, invoiceUUID *string) *cobra.Command {
	var poll time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live countdown and wait for the invoice to be settled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if poll <= 0 {
				return domain.ValidationError("poll", "must be greater than 0")
			}
			if err := resumeCrypto(cmd.Context(), app, *invoiceUUID); err != nil {
				return err
			}

			var input io.Reader
			if isInteractive(cmd) {
				input = cmd.InOrStdin()
			}
			return runCryptoWatch(cmd.Context(), cmd.OutOrStdout(), input, app.crypto, poll)
		},
	}

	cmd.Flags().DurationVar(&poll, "poll", defaultWatchPoll, "How often to check whether the invoice is paid")

	return cmd
}

func runCryptoWatch(ctx context.Context, output io.Writer, input io.Reader, flow *application.CryptoFlow, poll time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		newCryptoWatchModel(ctx, flow, poll),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	countdownDone := make(chan error, 1)
	go func() {
		countdownDone <- flow.RunCountdown(ctx, func(remaining time.Duration) {
			p.Send(countdownMsg{remaining: remaining})
		})
	}()

	finalModel, err := p.Run()
	cancel()
	if countdownErr := <-countdownDone; countdownErr != nil &&
		!errors.Is(countdownErr, context.Canceled) && !errors.Is(countdownErr, domain.ErrFlowReset) {
		return countdownErr
	}
	if err != nil {
		return err
	}

	result, ok := finalModel.(cryptoWatchModel)
	if !ok {
		return fmt.Errorf("unexpected final crypto watch model type %T", finalModel)
	}

	return result.final
}
