package billing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	invoiceDateLayout = "Jan 2, 2006"
	progressBarWidth  = 30
)

func RenderOverview(snapshot domain.BillingSnapshot) (string, error) {
	return render(func(s styles) string { return overviewView(snapshot, s) })
}

func RenderPlans(options []application.PlanOption) (string, error) {
	return render(func(s styles) string { return plansView(options, s) })
}

func RenderInvoices(lines []application.InvoiceLine) (string, error) {
	return render(func(s styles) string { return invoicesView(lines, s) })
}

func RenderCrypto(view application.CryptoView) (string, error) {
	return render(func(s styles) string { return cryptoView(view, s) })
}

// CryptoPanel draws the crypto panel without a program, for live models.
func CryptoPanel(view application.CryptoView) string {
	return cryptoView(view, newStyles())
}

func overviewView(snapshot domain.BillingSnapshot, s styles) string {
	lines := []string{s.title.Render("Billing")}

	if snapshot.Subscription == nil {
		lines = append(lines, s.empty.Render("No subscription."))
	} else {
		sub := snapshot.Subscription
		lines = append(lines,
			s.name.Render(fmt.Sprintf("Plan: %s", sub.Product.Name)),
			s.detail.Render(fmt.Sprintf("price: %s", priceWithInterval(sub.Price))),
		)
		if sub.Status != "" && sub.Status != domain.SubscriptionStatusActive {
			lines = append(lines, s.warning.Render(fmt.Sprintf("status: %s", sub.Status)))
		}
	}

	if snapshot.DefaultCard == nil {
		lines = append(lines, s.detail.Render("card: none"))
	} else {
		lines = append(lines, s.detail.Render("card: "+snapshot.DefaultCard.Label()))
	}

	open := 0
	for _, invoice := range snapshot.Invoices {
		if invoice.Status == domain.InvoiceStatusOpen {
			open++
		}
	}
	invoiceLine := fmt.Sprintf("invoices: %d", len(snapshot.Invoices))
	if open > 0 {
		invoiceLine += " " + s.warning.Render(fmt.Sprintf("(%d open)", open))
	}
	lines = append(lines, s.detail.Render(invoiceLine))

	if !snapshot.RefreshedAt.IsZero() {
		lines = append(lines, s.header.Render("refreshed "+snapshot.RefreshedAt.Local().Format(time.RFC3339)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func plansView(options []application.PlanOption, s styles) string {
	lines := []string{
		s.title.Render("Plans"),
		s.header.Render(fmt.Sprintf("plans: %d", len(options))),
	}

	if len(options) == 0 {
		lines = append(lines, s.empty.Render("No plans available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, option := range options {
		lines = append(lines, s.section.Render(planBlock(option, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func planBlock(option application.PlanOption, s styles) string {
	title := s.name.Render(fmt.Sprintf("%s (%s)", option.Plan.Name, option.Plan.ID))
	if option.Current {
		title += " " + s.current.Render("Current plan")
	}

	parts := []string{title}
	if description := strings.TrimSpace(option.Plan.Description); description != "" {
		parts = append(parts, s.faint.Render(description))
	}
	if option.Monthly != nil {
		parts = append(parts, s.detail.Render("monthly: "+option.Monthly.Label()))
	}
	if option.Yearly != nil {
		parts = append(parts, s.detail.Render("yearly:  "+option.Yearly.Label()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func invoicesView(lines []application.InvoiceLine, s styles) string {
	out := []string{s.title.Render("Invoices")}

	if len(lines) == 0 {
		out = append(out, s.empty.Render("No invoice found"))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	for _, line := range lines {
		out = append(out, invoiceRow(line, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func invoiceRow(line application.InvoiceLine, s styles) string {
	invoice := line.Invoice

	date := "-"
	if !invoice.PeriodStart.IsZero() {
		date = invoice.PeriodStart.Format(invoiceDateLayout)
	}

	product := invoice.Product.Name
	if product == "" {
		product = "-"
	}

	actions := make([]string, 0, len(line.Actions))
	for _, action := range line.Actions {
		actions = append(actions, s.action.Render(actionLabel(action)))
	}

	cells := []string{
		s.faint.Render(invoice.UUID),
		s.detail.Render(fmt.Sprintf("%-14s", date)),
		s.detail.Render(fmt.Sprintf("%-12s", product)),
		s.detail.Render(fmt.Sprintf("%12s", invoice.AmountLabel())),
		statusLabel(invoice, s),
	}
	if invoice.IsCrypto() {
		cells = append(cells, s.faint.Render("crypto"))
	}
	if len(actions) > 0 {
		cells = append(cells, strings.Join(actions, " "))
	}

	return strings.Join(cells, "  ")
}

func actionLabel(action domain.InvoiceAction) string {
	switch action {
	case domain.InvoiceActionPay:
		return "[Pay now]"
	case domain.InvoiceActionDownload:
		return "[View PDF]"
	default:
		return "[" + string(action) + "]"
	}
}

func statusLabel(invoice domain.Invoice, s styles) string {
	switch invoice.Status {
	case domain.InvoiceStatusOpen:
		return s.warning.Render(string(invoice.Status))
	case domain.InvoiceStatusPaid:
		return s.ok.Render(string(invoice.Status))
	default:
		return s.faint.Render(string(invoice.Status))
	}
}

func cryptoView(view application.CryptoView, s styles) string {
	lines := []string{s.title.Render("Crypto payment")}
	if view.Session.InvoiceUUID != "" {
		lines = append(lines, s.header.Render("invoice "+view.Session.InvoiceUUID))
	}

	if view.State == application.CryptoSettled {
		lines = append(lines, s.ok.Render("Payment received. The invoice is paid."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if view.Selected == nil {
		lines = append(lines, s.detail.Render("Choose a currency:"))
		for _, method := range view.Session.Payment.Methods {
			lines = append(lines, s.detail.Render(fmt.Sprintf("  %-9s %s %s", method.Currency, method.Amount.String(), method.Currency.Symbol())))
		}
		if len(view.Session.Payment.Methods) == 0 {
			lines = append(lines, s.empty.Render("  no payment methods"))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	method := *view.Selected
	lines = append(lines,
		s.name.Render(fmt.Sprintf("Send %s %s", method.Amount.String(), method.Currency.Symbol())),
		s.detail.Render("to: ")+s.address.Render(method.Address),
	)

	if view.Expired {
		lines = append(lines, s.warning.Render("Payment window expired. Start again to get fresh amounts."))
	} else {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			renderProgressBar(view.Progress, progressBarWidth, s),
			" ",
			s.detail.Render(domain.FormatCountdown(view.Remaining)),
		))
	}

	if view.State == application.CryptoTransferring {
		lines = append(lines, s.action.Render("Transfer in progress..."))
	}

	lines = append(lines, walletLines(view, method, s)...)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func walletLines(view application.CryptoView, method domain.CryptoPaymentMethod, s styles) []string {
	if !method.Currency.SupportsInAppTransfer() {
		return []string{s.faint.Render("Send the amount from your own wallet to the address above.")}
	}
	if !view.WalletConnected {
		return []string{s.faint.Render("wallet: not connected")}
	}

	lines := []string{s.ok.Render("wallet: connected")}
	if view.NetworkReady != nil && !*view.NetworkReady {
		lines = append(lines, s.warning.Render("network: wrong network, run fb crypto switch-network"))
	}
	if view.BalanceSufficient != nil {
		if *view.BalanceSufficient {
			lines = append(lines, s.ok.Render("balance: sufficient"))
		} else {
			lines = append(lines, s.warning.Render("balance: insufficient"))
		}
	}
	return lines
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func priceWithInterval(price domain.Price) string {
	label := price.Label()
	if price.IsFree() || price.Recurring.Interval == "" {
		return label
	}
	return label + " / " + string(price.Recurring.Interval)
}
