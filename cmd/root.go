package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/spf13/cobra"
)

const annotationSkipWire = "fb/skip-wire"

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, app := newRootCmd()
	err := run(ctx, root, app)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", errorMessage(err))
	}
	return err
}

// run executes root and releases whatever wiring opened, also when the
// command failed.
func run(ctx context.Context, root *cobra.Command, app *app) error {
	defer app.close()
	return root.ExecuteContext(ctx)
}

func errorMessage(err error) string {
	message := application.FormatError(err)
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound):
		message += ", run `fb invoices` to refresh the list"
	case errors.Is(err, domain.ErrPaymentExpired):
		message += ", run `fb crypto start` to fetch new payment methods"
	}
	return message
}

func newRootCmd() (*cobra.Command, *app) {
	var logLevel string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "fb",
		Short:         "Files billing CLI (fb): plans, cards, crypto payments and invoices",
		Long:          "fb manages the billing side of a Files storage account from the terminal: pick a plan, keep a default card, pay open invoices by card or crypto and download paid invoices.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipWire] != "" {
				return nil
			}
			wired, err := wireApp(cmd.Context(), cmd, logLevel)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error), overrides FB_LOG_LEVEL")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newBillingCmd(app),
		newPlansCmd(app),
		newCardCmd(app),
		newInvoicesCmd(app),
		newCryptoCmd(app),
	)

	return rootCmd, app
}
