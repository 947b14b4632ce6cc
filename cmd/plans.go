package cmd

import (
	"context"
	"fmt"

	billingview "github.com/bnema/files-billing-cli/internal/adapters/render/billing"
	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPlansCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List the available plans, the current one marked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var options []application.PlanOption
			err := billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Fetching plans...", func(ctx context.Context) error {
				if err := app.state.RefreshSubscription(ctx); err != nil {
					return err
				}
				fetched, err := app.plans.ListPlans(ctx)
				options = fetched
				return err
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, options)
			}

			rendered, err := billingview.RenderPlans(options)
			if err != nil {
				return fmt.Errorf("render plans: %w", err)
			}
			return writeRendered(cmd, rendered)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.AddCommand(newPlansSelectCmd(app))

	return cmd
}

func newPlansSelectCmd(app *app) *cobra.Command {
	var planID string
	var interval string
	var method string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Switch the subscription to a plan, paying by card or crypto",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var outcome application.PaymentOutcome
			err := billingview.RunWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Updating subscription...", func(ctx context.Context) error {
				if err := app.state.Refresh(ctx); err != nil {
					return err
				}
				choice, err := app.plans.Select(ctx, application.SelectPlanCommand{
					PlanID:   planID,
					Interval: domain.Interval(interval),
				})
				if err != nil {
					return err
				}
				outcome, err = app.payments.Apply(ctx, application.ChangePlanCommand{
					Choice: choice,
					Method: application.PaymentChoice(method),
				})
				return err
			})
			if err != nil {
				return err
			}

			return writePaymentOutcome(cmd, app, outcome)
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID")
	cmd.Flags().StringVar(&interval, "interval", string(domain.IntervalMonth), "Billing interval (month|year)")
	cmd.Flags().StringVar(&method, "method", "", "Payment method (card|crypto), not needed for a free plan")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func writePaymentOutcome(cmd *cobra.Command, app *app, outcome application.PaymentOutcome) error {
	switch outcome.Path {
	case application.PaymentPathCrypto:
		return writeCryptoView(cmd, app)
	default:
		planName := "the selected plan"
		if outcome.Subscription != nil && outcome.Subscription.Product.Name != "" {
			planName = outcome.Subscription.Product.Name
		}
		message := fmt.Sprintf("Subscribed to %s, charged to the default card", planName)
		if outcome.Path == application.PaymentPathFree {
			message = fmt.Sprintf("Switched to %s", planName)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), message)
		return err
	}
}
