package domain

import (
	"math/big"
	"time"
)

// Discount is the set of stacked discount fractions applied to a booking.
// Components are added together with no ceiling, so Total can exceed 1.
type Discount struct {
	group      *big.Rat
	frequency  *big.Rat
	birthday   *big.Rat
	specialDay *big.Rat
}

// NewDiscount builds a Discount from its components. Nil components count as zero.
func NewDiscount(group, frequency, birthday, specialDay *big.Rat) *Discount {
	return &Discount{
		group:      ratOrZero(group),
		frequency:  ratOrZero(frequency),
		birthday:   ratOrZero(birthday),
		specialDay: ratOrZero(specialDay),
	}
}

func (d *Discount) Group() *big.Rat      { return new(big.Rat).Set(d.group) }
func (d *Discount) Frequency() *big.Rat  { return new(big.Rat).Set(d.frequency) }
func (d *Discount) Birthday() *big.Rat   { return new(big.Rat).Set(d.birthday) }
func (d *Discount) SpecialDay() *big.Rat { return new(big.Rat).Set(d.specialDay) }

// Total returns the sum of all components.
func (d *Discount) Total() *big.Rat {
	sum := new(big.Rat).Add(d.group, d.frequency)
	sum.Add(sum, d.birthday)
	return sum.Add(sum, d.specialDay)
}

// Multiplier returns 1 - Total, the share of the base price that is charged.
func (d *Discount) Multiplier() *big.Rat {
	return new(big.Rat).Sub(big.NewRat(1, 1), d.Total())
}

// Fraction returns Total as a float64 for display.
func (d *Discount) Fraction() float64 {
	f, _ := d.Total().Float64()
	return f
}

// DiscountInput carries the booking and client attributes the engine reads.
// Frequency is the client's visit counter before the booking being priced.
type DiscountInput struct {
	Persons     int64
	Frequency   int64
	BookingDate time.Time
	DateOfBirth time.Time
	SpecialDay  bool
}

// DiscountEngine computes each discount category and stacks them.
type DiscountEngine struct{}

// NewDiscountEngine creates a new DiscountEngine.
func NewDiscountEngine() *DiscountEngine {
	return &DiscountEngine{}
}

var (
	zeroRat        = big.NewRat(0, 1)
	tenPercent     = big.NewRat(10, 100)
	twentyPercent  = big.NewRat(20, 100)
	thirtyPercent  = big.NewRat(30, 100)
	birthdayRate   = big.NewRat(50, 100)
	specialDayRate = big.NewRat(5, 100)
)

const (
	birthdayMinGroup = 3
	birthdayMaxGroup = 5
)

// Compute returns the stacked discount for in.
func (e *DiscountEngine) Compute(in DiscountInput) *Discount {
	var special *big.Rat
	if in.SpecialDay {
		special = specialDayRate
	}

	var birthday *big.Rat
	if IsBirthdayMatch(in.BookingDate, in.DateOfBirth) &&
		in.Persons >= birthdayMinGroup && in.Persons <= birthdayMaxGroup {
		birthday = birthdayRate
	}

	return NewDiscount(GroupDiscount(in.Persons), FrequencyDiscount(in.Frequency), birthday, special)
}

// GroupDiscount returns the group-size bracket discount.
func GroupDiscount(persons int64) *big.Rat {
	switch {
	case persons >= 3 && persons <= 5:
		return new(big.Rat).Set(tenPercent)
	case persons >= 6 && persons <= 10:
		return new(big.Rat).Set(twentyPercent)
	case persons >= 11 && persons <= 15:
		return new(big.Rat).Set(thirtyPercent)
	default:
		return new(big.Rat)
	}
}

// FrequencyDiscount returns the loyalty discount for a prior visit count.
func FrequencyDiscount(visits int64) *big.Rat {
	switch {
	case visits >= 7:
		return new(big.Rat).Set(thirtyPercent)
	case visits >= 5:
		return new(big.Rat).Set(twentyPercent)
	case visits >= 2:
		return new(big.Rat).Set(tenPercent)
	default:
		return new(big.Rat)
	}
}

// IsBirthdayMatch reports whether the booking date and the date of birth are
// the same instant. Month/day coincidence alone does not count.
func IsBirthdayMatch(bookingDate, dateOfBirth time.Time) bool {
	if bookingDate.IsZero() || dateOfBirth.IsZero() {
		return false
	}
	return bookingDate.Equal(dateOfBirth)
}

func ratOrZero(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat).Set(zeroRat)
	}
	return new(big.Rat).Set(r)
}
