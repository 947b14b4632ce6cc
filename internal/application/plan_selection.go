package application

import (
	"context"
	"fmt"

	"github.com/bnema/files-billing-cli/internal/domain"
	"github.com/bnema/files-billing-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type PlanSelection struct {
	api    ports.BillingAPI
	state  *BillingState
	logger *logrus.Logger
}

func NewPlanSelection(api ports.BillingAPI, state *BillingState, logger *logrus.Logger) *PlanSelection {
	if logger == nil {
		logger = discardLogger()
	}

	return &PlanSelection{api: api, state: state, logger: logger}
}

// ListPlans fetches the available plans and marks the one the account is
// subscribed to.
func (p *PlanSelection) ListPlans(ctx context.Context) ([]PlanOption, error) {
	plans, err := p.api.ListPlans(ctx)
	if err != nil {
		p.logger.WithError(err).Error("fetch available plans failed")
		return nil, fmt.Errorf("fetch available plans: %w", err)
	}

	currentID := ""
	if subscription := p.state.Snapshot().Subscription; subscription != nil {
		currentID = subscription.Product.ID
	}

	options := make([]PlanOption, 0, len(plans))
	for _, plan := range plans {
		option := PlanOption{Plan: plan, Current: currentID != "" && plan.ID == currentID}
		if price, ok := plan.PriceFor(domain.IntervalMonth); ok {
			option.Monthly = &price
		}
		if price, ok := plan.PriceFor(domain.IntervalYear); ok {
			option.Yearly = &price
		}
		options = append(options, option)
	}

	return options, nil
}

func (p *PlanSelection) Select(ctx context.Context, cmd SelectPlanCommand) (PlanChoice, error) {
	if err := validateCommand(cmd); err != nil {
		return PlanChoice{}, err
	}

	options, err := p.ListPlans(ctx)
	if err != nil {
		return PlanChoice{}, err
	}

	for _, option := range options {
		if option.Plan.ID != cmd.PlanID {
			continue
		}
		if option.Current {
			return PlanChoice{}, domain.ValidationError("plan", "already on this plan")
		}

		price, ok := option.Plan.PriceFor(cmd.Interval)
		if !ok {
			return PlanChoice{}, domain.ValidationError("interval", fmt.Sprintf("plan %q has no %s price", option.Plan.ID, cmd.Interval))
		}

		return PlanChoice{Plan: option.Plan, Price: price}, nil
	}

	return PlanChoice{}, domain.ValidationError("plan", fmt.Sprintf("unknown plan %q", cmd.PlanID))
}
