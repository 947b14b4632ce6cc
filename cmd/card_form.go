package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var errFormCancelled = errors.New("card form cancelled")

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	formLabelStyle = lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("245"))
	formErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	formHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// focusTracker receives the focused field as the user moves through the form.
type focusTracker interface {
	Focus(field domain.CardField)
	Blur()
	IsUpdate() bool
}

type cardFormModel struct {
	tracker   focusTracker
	fields    []domain.CardField
	inputs    []textinput.Model
	focus     int
	card      domain.CardDetails
	errText   string
	submitted bool
	cancelled bool
}

func newCardFormModel(tracker focusTracker) cardFormModel {
	number := textinput.New()
	number.Placeholder = "4242 4242 4242 4242"
	number.CharLimit = 23

	expiry := textinput.New()
	expiry.Placeholder = "MM/YY"
	expiry.CharLimit = 7

	cvc := textinput.New()
	cvc.Placeholder = "123"
	cvc.CharLimit = 4
	cvc.EchoMode = textinput.EchoPassword
	cvc.EchoCharacter = '•'

	m := cardFormModel{
		tracker: tracker,
		fields:  []domain.CardField{domain.CardFieldNumber, domain.CardFieldExpiry, domain.CardFieldCVC},
		inputs:  []textinput.Model{number, expiry, cvc},
	}
	m.setFocus(0)
	return m
}

func (m *cardFormModel) setFocus(index int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = index
	m.inputs[index].Focus()
	m.tracker.Focus(m.fields[index])
}

func (m cardFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m cardFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.tracker.Blur()
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case tea.KeyEnter:
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			card, err := cardFromInput(m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value())
			if err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.card = card
			m.submitted = true
			m.tracker.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m cardFormModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	title := "Add a card"
	if m.tracker.IsUpdate() {
		title = "Update card"
	}

	lines := []string{formTitleStyle.Render(title), ""}
	labels := []string{"Number", "Expiry", "CVC"}
	for i, input := range m.inputs {
		lines = append(lines, fmt.Sprintf("%s %s", formLabelStyle.Render(labels[i]), input.View()))
	}
	if m.errText != "" {
		lines = append(lines, "", formErrorStyle.Render(m.errText))
	}
	lines = append(lines, "", formHelpStyle.Render("tab next • enter submit • esc cancel"))

	return strings.Join(lines, "\n")
}

// runCardForm collects card details interactively. It returns
// errFormCancelled when the user leaves the form.
func runCardForm(cmd *cobra.Command, flow *application.CardFlow) (domain.CardDetails, error) {
	p := tea.NewProgram(
		newCardFormModel(flow),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithContext(cmd.Context()),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.CardDetails{}, err
	}

	result, ok := finalModel.(cardFormModel)
	if !ok {
		return domain.CardDetails{}, fmt.Errorf("unexpected final card form model type %T", finalModel)
	}
	if !result.submitted {
		return domain.CardDetails{}, errFormCancelled
	}

	return result.card, nil
}
