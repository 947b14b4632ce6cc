package cmd

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	billingview "github.com/bnema/files-billing-cli/internal/adapters/render/billing"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errCardDetailsRequired = errors.New("card details required: pass --number, --exp and --cvc or run in a terminal")

type cardFlags struct {
	number string
	expiry string
	cvc    string
}

func (f cardFlags) any() bool {
	return f.number != "" || f.expiry != "" || f.cvc != ""
}

func newCardCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage the default payment card",
	}

	cmd.AddCommand(
		newCardSubmitCmd(app, "add", "Add a default card", false),
		newCardSubmitCmd(app, "update", "Replace the default card", true),
	)

	return cmd
}

func newCardSubmitCmd(app *app, use, short string, requireExisting bool) *cobra.Command {
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := app.state.RefreshDefaultCard(ctx); err != nil {
				return err
			}
			if requireExisting && !app.cards.IsUpdate() {
				return domain.ErrNoDefaultCard
			}

			if err := app.cards.Begin(); err != nil {
				return err
			}

			card, err := collectCard(cmd, app, flags)
			if err != nil {
				resetErr := app.cards.Reset()
				if errors.Is(err, errFormCancelled) && resetErr != nil {
					return resetErr
				}
				return err
			}

			return billingview.RunWithProgress(ctx, cmd.ErrOrStderr(), "Saving card...", func(ctx context.Context) error {
				_, err := app.cards.Submit(ctx, card)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&flags.number, "number", "", "Card number")
	cmd.Flags().StringVar(&flags.expiry, "exp", "", "Expiry as MM/YY")
	cmd.Flags().StringVar(&flags.cvc, "cvc", "", "Card security code")

	return cmd
}

func collectCard(cmd *cobra.Command, app *app, flags cardFlags) (domain.CardDetails, error) {
	if flags.any() {
		return cardFromInput(flags.number, flags.expiry, flags.cvc)
	}

	if !isInteractive(cmd) {
		return domain.CardDetails{}, errCardDetailsRequired
	}

	return runCardForm(cmd, app.cards)
}

// cardFromInput only parses the expiry. Number and CVC are checked by the
// payment provider during tokenization.
func cardFromInput(number, expiry, cvc string) (domain.CardDetails, error) {
	month, year, err := parseExpiry(expiry)
	if err != nil {
		return domain.CardDetails{}, err
	}

	return domain.CardDetails{
		Number:   strings.ReplaceAll(strings.TrimSpace(number), " ", ""),
		ExpMonth: month,
		ExpYear:  year,
		CVC:      strings.TrimSpace(cvc),
	}, nil
}

// parseExpiry accepts MM/YY and MM/YYYY.
func parseExpiry(raw string) (int64, int64, error) {
	invalid := domain.ValidationError(string(domain.CardFieldExpiry), "must be MM/YY")

	monthPart, yearPart, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok {
		return 0, 0, invalid
	}
	month, err := strconv.ParseInt(strings.TrimSpace(monthPart), 10, 64)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, invalid
	}

	yearPart = strings.TrimSpace(yearPart)
	year, err := strconv.ParseInt(yearPart, 10, 64)
	if err != nil || year < 0 {
		return 0, 0, invalid
	}
	switch len(yearPart) {
	case 2:
		year += 2000
	case 4:
	default:
		return 0, 0, invalid
	}

	return month, year, nil
}

func isInteractive(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
