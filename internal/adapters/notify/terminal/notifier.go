package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// Notifier prints toasts as single styled lines. Errors go to errOut.
type Notifier struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

var _ ports.Notifier = (*Notifier)(nil)

func New(out, errOut io.Writer) *Notifier {
	return &Notifier{
		out:     out,
		errOut:  errOut,
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (n *Notifier) Notify(notification domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch notification.Kind {
	case domain.NotificationError:
		_, _ = fmt.Fprintln(n.errOut, n.failure.Render("✗ "+notification.Title))
	default:
		_, _ = fmt.Fprintln(n.out, n.success.Render("✓ "+notification.Title))
	}
}
