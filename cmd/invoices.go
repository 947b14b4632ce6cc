package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	billingview "github.com/bnema/files-billing-cli/internal/adapters/render/billing"
	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newInvoicesCmd(app *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Refresh and list invoices with their actions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return domain.ValidationError("limit", "must be at least 0")
			}
			if err := refreshInvoices(cmd, app); err != nil {
				return err
			}

			lines := app.invoices.Lines(limit)
			if asJSON {
				return writeJSON(cmd, lines)
			}

			rendered, err := billingview.RenderInvoices(lines)
			if err != nil {
				return fmt.Errorf("render invoices: %w", err)
			}
			return writeRendered(cmd, rendered)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most N invoices (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.AddCommand(newInvoicesPayCmd(app), newInvoicesDownloadCmd(app))

	return cmd
}

func newInvoicesPayCmd(app *app) *cobra.Command {
	var invoiceUUID string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay an open invoice with the default card, or start its crypto payment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := refreshInvoices(cmd, app); err != nil {
				return err
			}

			invoiceCmd := application.InvoiceCommand{InvoiceUUID: invoiceUUID}
			settlement, err := app.invoices.Resolve(invoiceCmd)
			if err != nil {
				return err
			}

			if settlement.Path == application.SettlementCrypto {
				err := billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Fetching crypto payment...", func(ctx context.Context) error {
					_, err := app.crypto.Start(ctx, application.StartCryptoCommand{InvoiceUUID: settlement.Invoice.UUID})
					return err
				})
				if err != nil {
					return err
				}
				return writeCryptoView(cmd, app)
			}

			var paid domain.Invoice
			err = billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Paying invoice...", func(ctx context.Context) error {
				invoice, err := app.invoices.Pay(ctx, invoiceCmd)
				paid = invoice
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s: %s (%s)\n", paid.UUID, paid.Status, paid.AmountLabel())
			return err
		},
	}

	cmd.Flags().StringVar(&invoiceUUID, "invoice", "", "Invoice UUID")
	_ = cmd.MarkFlagRequired("invoice")

	return cmd
}

func newInvoicesDownloadCmd(app *app) *cobra.Command {
	var invoiceUUID string
	var out string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the PDF of a paid invoice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := refreshInvoices(cmd, app); err != nil {
				return err
			}

			invoiceCmd := application.InvoiceCommand{InvoiceUUID: invoiceUUID}
			if out == "-" {
				return app.invoices.Download(cmd.Context(), invoiceCmd, cmd.OutOrStdout())
			}
			if out == "" {
				out = fmt.Sprintf("invoice-%s.pdf", invoiceUUID)
			}

			if err := downloadToFile(cmd.Context(), app, invoiceCmd, out); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", out)
			return err
		},
	}

	cmd.Flags().StringVar(&invoiceUUID, "invoice", "", "Invoice UUID")
	cmd.Flags().StringVar(&out, "out", "", "Output file, - for stdout (default invoice-<uuid>.pdf)")
	_ = cmd.MarkFlagRequired("invoice")

	return cmd
}

// downloadToFile writes into a temp file next to path and renames it once
// the download completed.
func downloadToFile(ctx context.Context, app *app, invoiceCmd application.InvoiceCommand, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".invoice-*.pdf")
	if err != nil {
		return fmt.Errorf("create invoice file: %w", err)
	}
	tmpPath := tmp.Name()

	downloadErr := app.invoices.Download(ctx, invoiceCmd, tmp)
	closeErr := tmp.Close()
	if err := errors.Join(downloadErr, closeErr); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("save invoice file: %w", err)
	}

	return nil
}

func refreshInvoices(cmd *cobra.Command, app *app) error {
	return billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Fetching invoices...", func(ctx context.Context) error {
		return app.state.RefreshInvoices(ctx)
	})
}
