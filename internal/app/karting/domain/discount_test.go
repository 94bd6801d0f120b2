package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupDiscount(t *testing.T) {
	tests := []struct {
		persons  int64
		expected *big.Rat
	}{
		{1, big.NewRat(0, 1)},
		{2, big.NewRat(0, 1)},
		{3, big.NewRat(10, 100)},
		{5, big.NewRat(10, 100)},
		{6, big.NewRat(20, 100)},
		{10, big.NewRat(20, 100)},
		{11, big.NewRat(30, 100)},
		{15, big.NewRat(30, 100)},
		{16, big.NewRat(0, 1)},
		{40, big.NewRat(0, 1)},
	}

	for _, tt := range tests {
		got := GroupDiscount(tt.persons)
		assert.Zero(t, got.Cmp(tt.expected), "persons=%d got %s", tt.persons, got.RatString())
	}
}

func TestGroupDiscount_MonotonicAcrossBrackets(t *testing.T) {
	// Within the bracketed range each edge must not lower the discount.
	prev := GroupDiscount(1)
	for persons := int64(2); persons <= 15; persons++ {
		cur := GroupDiscount(persons)
		assert.GreaterOrEqual(t, cur.Cmp(prev), 0, "discount dropped at %d persons", persons)
		prev = cur
	}

	for _, edge := range []int64{3, 6, 11} {
		assert.Equal(t, 1, GroupDiscount(edge).Cmp(GroupDiscount(edge-1)), "edge %d should step up", edge)
	}
}

func TestFrequencyDiscount(t *testing.T) {
	tests := []struct {
		visits   int64
		expected *big.Rat
	}{
		{0, big.NewRat(0, 1)},
		{1, big.NewRat(0, 1)},
		{2, big.NewRat(10, 100)},
		{4, big.NewRat(10, 100)},
		{5, big.NewRat(20, 100)},
		{6, big.NewRat(20, 100)},
		{7, big.NewRat(30, 100)},
		{100, big.NewRat(30, 100)},
	}

	for _, tt := range tests {
		got := FrequencyDiscount(tt.visits)
		assert.Zero(t, got.Cmp(tt.expected), "visits=%d got %s", tt.visits, got.RatString())
	}
}

func TestIsBirthdayMatch_ExactInstantOnly(t *testing.T) {
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("identical instant matches", func(t *testing.T) {
		assert.True(t, IsBirthdayMatch(dob, dob))
	})

	t.Run("same instant in another zone matches", func(t *testing.T) {
		santiago := time.FixedZone("CLT", -4*3600)
		assert.True(t, IsBirthdayMatch(dob.In(santiago), dob))
	})

	t.Run("same month and day in another year does not match", func(t *testing.T) {
		anniversary := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
		assert.False(t, IsBirthdayMatch(anniversary, dob))
	})

	t.Run("one second apart does not match", func(t *testing.T) {
		assert.False(t, IsBirthdayMatch(dob.Add(time.Second), dob))
	})

	t.Run("missing date of birth never matches", func(t *testing.T) {
		assert.False(t, IsBirthdayMatch(time.Time{}, time.Time{}))
	})
}

func TestDiscountEngine_Compute(t *testing.T) {
	engine := NewDiscountEngine()
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("no discounts", func(t *testing.T) {
		d := engine.Compute(DiscountInput{Persons: 1})
		assert.Zero(t, d.Total().Sign())
		assert.Equal(t, 0.0, d.Fraction())
	})

	t.Run("components stack additively", func(t *testing.T) {
		d := engine.Compute(DiscountInput{
			Persons:     4,
			Frequency:   5,
			BookingDate: dob,
			DateOfBirth: dob,
			SpecialDay:  true,
		})

		assert.Zero(t, d.Group().Cmp(big.NewRat(10, 100)))
		assert.Zero(t, d.Frequency().Cmp(big.NewRat(20, 100)))
		assert.Zero(t, d.Birthday().Cmp(big.NewRat(50, 100)))
		assert.Zero(t, d.SpecialDay().Cmp(big.NewRat(5, 100)))
		assert.Zero(t, d.Total().Cmp(big.NewRat(85, 100)))
		assert.InDelta(t, 0.85, d.Fraction(), 1e-12)
	})

	t.Run("birthday requires group of three to five", func(t *testing.T) {
		for _, persons := range []int64{1, 2, 6, 12} {
			d := engine.Compute(DiscountInput{Persons: persons, BookingDate: dob, DateOfBirth: dob})
			assert.Zero(t, d.Birthday().Sign(), "persons=%d", persons)
		}
	})

	t.Run("birthday on a different instant is ignored", func(t *testing.T) {
		d := engine.Compute(DiscountInput{
			Persons:     4,
			BookingDate: dob.AddDate(35, 0, 0),
			DateOfBirth: dob,
		})
		assert.Zero(t, d.Birthday().Sign())
	})

	t.Run("special day alone", func(t *testing.T) {
		d := engine.Compute(DiscountInput{Persons: 1, SpecialDay: true})
		assert.Zero(t, d.Total().Cmp(big.NewRat(5, 100)))
	})
}

func TestDiscount_NotClamped(t *testing.T) {
	d := NewDiscount(big.NewRat(60, 100), big.NewRat(60, 100), nil, nil)

	assert.Zero(t, d.Total().Cmp(big.NewRat(120, 100)))
	assert.Equal(t, -1, d.Multiplier().Sign())
}
