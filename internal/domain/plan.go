package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Interval string

const (
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

type Recurring struct {
	Interval      Interval
	IntervalCount int
}

type Price struct {
	ID         string
	UnitAmount decimal.Decimal
	Currency   string
	Recurring  Recurring
}

func (p Price) IsFree() bool {
	return p.UnitAmount.IsZero()
}

// Label renders the price the way plan cards show it: "Free" for zero
// amounts, "<amount> <CURRENCY>" otherwise.
func (p Price) Label() string {
	if p.IsFree() {
		return "Free"
	}
	return fmt.Sprintf("%s %s", p.UnitAmount.String(), strings.ToUpper(p.Currency))
}

type Plan struct {
	ID          string
	Name        string
	Description string
	Prices      []Price
}

func (p Plan) PriceFor(interval Interval) (Price, bool) {
	for _, price := range p.Prices {
		if price.Recurring.Interval == interval {
			return price, true
		}
	}
	return Price{}, false
}

func (p Plan) PriceByID(id string) (Price, bool) {
	for _, price := range p.Prices {
		if price.ID == id {
			return price, true
		}
	}
	return Price{}, false
}

func FindPlan(plans []Plan, id string) (Plan, bool) {
	for _, plan := range plans {
		if plan.ID == id {
			return plan, true
		}
	}
	return Plan{}, false
}
