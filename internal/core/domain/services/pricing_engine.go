package services

import (
	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

const (
	// PineappleTopping is the canonical topping name that triggers the pineapple rebate.
	PineappleTopping = "pineapple"

	// BundleSize is the number of consecutive items forming a group whose cheapest item is free.
	BundleSize = 3
)

// PineappleRebate is subtracted once per order when any item carries PineappleTopping.
var PineappleRebate = decimal.RequireFromString("1.00")

// Quote is the price breakdown of a set of line items. Total = Base - PineappleRebate -
// BundleRebate, clamped at zero and rounded to cents.
type Quote struct {
	Base            decimal.Decimal
	PineappleRebate decimal.Decimal
	BundleRebate    decimal.Decimal
	Total           decimal.Decimal
}

// PricingEngine computes order totals. It is stateless and safe for concurrent use.
//
// Rules, applied to the same base total and cumulative:
//   - Pineapple rebate: if at least one item has the exact topping "pineapple", 1.00 is
//     subtracted, at most once per order
//   - Every third free: items are split in their given order into consecutive groups of
//     BundleSize; for every complete group the cheapest item (earliest on ties) is free.
//     A trailing incomplete group gets nothing
//
// Example:
//
//	engine := services.NewPricingEngine()
//	total := engine.Price(o.Items())
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price returns the total to charge for items.
func (e PricingEngine) Price(items []order.LineItem) decimal.Decimal {
	return e.Quote(items).Total
}

// Quote returns the full price breakdown for items.
func (e PricingEngine) Quote(items []order.LineItem) Quote {
	q := Quote{
		Base:            decimal.Zero,
		PineappleRebate: decimal.Zero,
		BundleRebate:    decimal.Zero,
	}

	for _, item := range items {
		q.Base = q.Base.Add(item.Price())
		if q.PineappleRebate.IsZero() && item.HasTopping(PineappleTopping) {
			q.PineappleRebate = PineappleRebate
		}
	}

	for start := 0; start+BundleSize <= len(items); start += BundleSize {
		q.BundleRebate = q.BundleRebate.Add(cheapest(items[start : start+BundleSize]))
	}

	total := q.Base.Sub(q.PineappleRebate).Sub(q.BundleRebate)
	if total.IsNegative() {
		total = decimal.Zero
	}
	q.Total = total.Round(2)

	return q
}

// cheapest returns the lowest price in group; strict comparison keeps the earliest on ties.
func cheapest(group []order.LineItem) decimal.Decimal {
	lowest := group[0].Price()
	for _, item := range group[1:] {
		if item.Price().LessThan(lowest) {
			lowest = item.Price()
		}
	}
	return lowest
}
