package domain

import (
	"fmt"
	"math/big"
)

// Money is an exact amount of Chilean pesos backed by big.Rat.
// Intermediate values (discounted subtotals, tax) may carry fractions;
// they are truncated toward zero only when a whole-peso amount is needed.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// Pesos creates a Money holding a whole number of pesos.
func Pesos(amount int64) *Money {
	return &Money{rat: new(big.Rat).SetInt64(amount)}
}

// NewMoneyFromRat creates a Money from a big.Rat. A nil rat yields zero.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: new(big.Rat)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat returns m * rat.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// Truncate drops the fractional part, rounding toward zero.
func (m *Money) Truncate() *Money {
	q := new(big.Int).Quo(m.rat.Num(), m.rat.Denom())
	return &Money{rat: new(big.Rat).SetInt(q)}
}

// Int64 returns the whole-peso value truncated toward zero.
// The second return value is false when the amount does not fit in an int64.
func (m *Money) Int64() (int64, bool) {
	q := new(big.Int).Quo(m.rat.Num(), m.rat.Denom())
	if !q.IsInt64() {
		return 0, false
	}
	return q.Int64(), true
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals returns true if both amounts are the same rational.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximation for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String formats the amount with two decimals.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy returns a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
