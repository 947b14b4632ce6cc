package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	billingview "github.com/bnema/files-billing-cli/internal/adapters/render/billing"
	"github.com/spf13/cobra"
)

func newBillingCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Refresh and show the subscription, default card and invoices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := refreshBilling(cmd, app); err != nil {
				return err
			}

			snapshot := app.state.Snapshot()
			if asJSON {
				return writeJSON(cmd, snapshot)
			}

			rendered, err := billingview.RenderOverview(snapshot)
			if err != nil {
				return fmt.Errorf("render billing overview: %w", err)
			}
			return writeRendered(cmd, rendered)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func refreshBilling(cmd *cobra.Command, app *app) error {
	return billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Fetching billing state...", func(ctx context.Context) error {
		return app.state.Refresh(ctx)
	})
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(cmd *cobra.Command, rendered string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
