package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingCalculator_ComputeTotal(t *testing.T) {
	pc := NewPricingCalculator()

	tests := []struct {
		name      string
		base      int64
		discount  *Discount
		beforeTax int64
		tax       int64
		total     int64
	}{
		{
			name:      "no discount",
			base:      15000,
			discount:  NewDiscount(nil, nil, nil, nil),
			beforeTax: 15000,
			tax:       2850,
			total:     17850,
		},
		{
			name:      "group discount only",
			base:      15000,
			discount:  NewDiscount(big.NewRat(10, 100), nil, nil, nil),
			beforeTax: 13500,
			tax:       2565,
			total:     16065,
		},
		{
			name:      "all discounts stacked",
			base:      15000,
			discount:  NewDiscount(big.NewRat(10, 100), big.NewRat(20, 100), big.NewRat(50, 100), big.NewRat(5, 100)),
			beforeTax: 2250,
			tax:       427,
			total:     2677,
		},
		{
			name:      "thirty percent",
			base:      15000,
			discount:  NewDiscount(nil, big.NewRat(30, 100), nil, nil),
			beforeTax: 10500,
			tax:       1995,
			total:     12495,
		},
		{
			name:      "tax of 142.5 truncates to 142",
			base:      15000,
			discount:  NewDiscount(big.NewRat(10, 100), big.NewRat(30, 100), big.NewRat(50, 100), big.NewRat(5, 100)),
			beforeTax: 750,
			tax:       142,
			total:     892,
		},
		{
			name:      "premium tier",
			base:      25000,
			discount:  NewDiscount(big.NewRat(20, 100), nil, nil, nil),
			beforeTax: 20000,
			tax:       3800,
			total:     23800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := pc.ComputeTotal(Pesos(tt.base), tt.discount)

			beforeTax, ok := total.BeforeTax.Int64()
			assert.True(t, ok)
			assert.Equal(t, tt.beforeTax, beforeTax)
			assert.Equal(t, tt.tax, total.TaxAmount())
			assert.Equal(t, tt.total, total.ChargeAmount())
			assert.True(t, total.Base.Equals(Pesos(tt.base)))
		})
	}
}

func TestPricingCalculator_DiscountAboveOneYieldsNegativeTotal(t *testing.T) {
	pc := NewPricingCalculator()
	discount := NewDiscount(big.NewRat(60, 100), big.NewRat(60, 100), nil, nil)

	total := pc.ComputeTotal(Pesos(15000), discount)

	// 15000 * (1 - 1.2) = -3000, tax = trunc(-570) = -570
	assert.True(t, total.BeforeTax.Equals(Pesos(-3000)))
	assert.Equal(t, int64(-570), total.TaxAmount())
	assert.Equal(t, int64(-3570), total.ChargeAmount())
}

func TestPricingCalculator_NegativeTaxTruncatesTowardZero(t *testing.T) {
	pc := NewPricingCalculator()
	// 15000 * (1 - 1.05) = -750, tax = -142.5 -> -142
	discount := NewDiscount(big.NewRat(1, 1), big.NewRat(5, 100), nil, nil)

	total := pc.ComputeTotal(Pesos(15000), discount)

	assert.Equal(t, int64(-142), total.TaxAmount())
	assert.Equal(t, int64(-892), total.ChargeAmount())
}
