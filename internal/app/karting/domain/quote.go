package domain

import "time"

// Quote is the priced result of a booking request before anything is charged.
type Quote struct {
	Rate     Rate
	Discount *Discount
	Total    *Total
}

var (
	defaultDiscountEngine    = NewDiscountEngine()
	defaultPricingCalculator = NewPricingCalculator()
)

// QuoteBooking resolves the rate tier, validates the group size, stacks the
// discounts using the client's current visit count and applies tax.
// It is shared by booking creation and voucher regeneration so both always
// agree on the numbers.
func QuoteBooking(feeOption, persons int64, bookingDate time.Time, specialDay bool, client *Client) (*Quote, error) {
	rate, err := ResolveRate(feeOption)
	if err != nil {
		return nil, err
	}
	if persons <= 0 {
		return nil, ErrInvalidNumberOfPersons
	}

	discount := defaultDiscountEngine.Compute(DiscountInput{
		Persons:     persons,
		Frequency:   client.Frequency(),
		BookingDate: bookingDate,
		DateOfBirth: client.DateOfBirth(),
		SpecialDay:  specialDay,
	})

	return &Quote{
		Rate:     rate,
		Discount: discount,
		Total:    defaultPricingCalculator.ComputeTotal(rate.BasePriceMoney(), discount),
	}, nil
}
