package domain

import "math/big"

// TaxRate is the value-added tax applied after discounts (19%).
var TaxRate = big.NewRat(19, 100)

// Total is the priced breakdown of a booking.
type Total struct {
	Base      *Money
	BeforeTax *Money
	Tax       *Money
	WithTax   *Money
}

// ChargeAmount is the whole-peso amount debited from the client.
func (t *Total) ChargeAmount() int64 {
	v, _ := t.WithTax.Int64()
	return v
}

// TaxAmount is the truncated tax as an integer.
func (t *Total) TaxAmount() int64 {
	v, _ := t.Tax.Int64()
	return v
}

// PricingCalculator applies a stacked discount and tax to a base price.
//
// The discount is not clamped: a total discount above 1 produces a negative
// subtotal, negative tax and a negative charge, which credits the client.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// ComputeTotal returns base*(1-discount), the truncated tax on it, and their sum.
func (pc *PricingCalculator) ComputeTotal(base *Money, discount *Discount) *Total {
	beforeTax := base.MultiplyByRat(discount.Multiplier())
	tax := beforeTax.MultiplyByRat(TaxRate).Truncate()

	return &Total{
		Base:      base.Copy(),
		BeforeTax: beforeTax,
		Tax:       tax,
		WithTax:   beforeTax.Add(tax),
	}
}
