package cmd

import (
	"context"
	"fmt"

	billingview "github.com/bnema/files-billing-cli/internal/adapters/render/billing"
	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCryptoCmd(app *app) *cobra.Command {
	var invoiceUUID string

	cmd := &cobra.Command{
		Use:   "crypto",
		Short: "Pay an open invoice with crypto",
	}
	cmd.PersistentFlags().StringVar(&invoiceUUID, "invoice", "", "Invoice UUID (default: the pending crypto invoice)")

	cmd.AddCommand(
		newCryptoStartCmd(app, &invoiceUUID),
		newCryptoSelectCmd(app, &invoiceUUID),
		newCryptoBackCmd(app, &invoiceUUID),
		newCryptoTransferCmd(app, &invoiceUUID),
		newCryptoSwitchNetworkCmd(app),
		newCryptoWatchCmd(app, &invoiceUUID),
	)

	return cmd
}

func newCryptoStartCmd(app *app, invoiceUUID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Fetch the crypto payment methods of an open invoice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Fetching crypto payment...", func(ctx context.Context) error {
				if err := app.state.Refresh(ctx); err != nil {
					return err
				}
				_, err := app.crypto.Start(ctx, application.StartCryptoCommand{InvoiceUUID: *invoiceUUID})
				return err
			})
			if err != nil {
				return err
			}

			return writeCryptoView(cmd, app)
		},
	}
}

func newCryptoSelectCmd(app *app, invoiceUUID *string) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the currency to pay with",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := resumeCrypto(cmd.Context(), app, *invoiceUUID); err != nil {
				return err
			}
			if err := app.crypto.SelectCurrency(cmd.Context(), application.SelectCurrencyCommand{Currency: domain.Currency(currency)}); err != nil {
				return err
			}

			return writeCryptoView(cmd, app)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Currency (bitcoin|ethereum|dai|usdc)")
	_ = cmd.MarkFlagRequired("currency")

	return cmd
}

func newCryptoBackCmd(app *app, invoiceUUID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Clear the selected currency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := resumeCrypto(cmd.Context(), app, *invoiceUUID); err != nil {
				return err
			}
			if err := app.crypto.Back(cmd.Context()); err != nil {
				return err
			}

			return writeCryptoView(cmd, app)
		},
	}
}

func newCryptoTransferCmd(app *app, invoiceUUID *string) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer",
		Short: "Send the selected amount from the connected wallet and wait for confirmation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := resumeCrypto(ctx, app, *invoiceUUID); err != nil {
				return err
			}

			var txHash string
			err := billingview.RunWithProgress(ctx, cmd.ErrOrStderr(), "Waiting for the transfer to confirm...", func(ctx context.Context) error {
				hash, err := app.crypto.Transfer(ctx)
				txHash = hash
				return err
			})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Transaction confirmed: %s\n", txHash); err != nil {
				return err
			}

			if _, err := app.crypto.Refresh(ctx); err != nil {
				return err
			}
			return writeCryptoView(cmd, app)
		},
	}
}

func newCryptoSwitchNetworkCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch-network",
		Short: "Ask the wallet to switch to the network payments are made on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ready, err := app.crypto.SwitchNetwork(cmd.Context())
			if err != nil {
				return err
			}
			if !ready {
				return domain.ErrNetworkMismatch
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wallet is on network %d\n", app.crypto.RequiredNetwork())
			return err
		},
	}
}

// resumeCrypto restores the persisted session of invoiceUUID, or of the
// pending crypto invoice in the cached billing state.
func resumeCrypto(ctx context.Context, app *app, invoiceUUID string) error {
	if invoiceUUID == "" {
		invoice, ok := domain.PendingCryptoInvoice(app.state.Snapshot().Invoices)
		if !ok {
			return domain.ErrNoActivePayment
		}
		invoiceUUID = invoice.UUID
	}

	_, err := app.crypto.Resume(ctx, invoiceUUID)
	return err
}

func writeCryptoView(cmd *cobra.Command, app *app) error {
	rendered, err := billingview.RenderCrypto(app.crypto.View(cmd.Context()))
	if err != nil {
		return fmt.Errorf("render crypto payment: %w", err)
	}
	return writeRendered(cmd, rendered)
}
