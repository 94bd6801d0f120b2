package domain

import "time"

// Voucher is the receipt for a booking. It is recomputed on demand and never stored.
type Voucher struct {
	BookingID       string
	Name            string
	Rut             string
	Fee             int64
	Tax             int64
	Discount        float64
	DateBooking     time.Time
	FeeOption       int64
	Laps            int64
	DurationMinutes int64
	Persons         int64
	TotalBeforeTax  int64
	Total           int64
}

// NewVoucher assembles a receipt. The date is the booking's original date.
func NewVoucher(booking *Booking, client *Client, quote *Quote) *Voucher {
	beforeTax, _ := quote.Total.BeforeTax.Int64()
	return &Voucher{
		BookingID:       booking.ID(),
		Name:            booking.MainPerson(),
		Rut:             client.Rut(),
		Fee:             quote.Rate.BasePrice,
		Tax:             quote.Total.TaxAmount(),
		Discount:        quote.Discount.Fraction(),
		DateBooking:     booking.DateBooking(),
		FeeOption:       quote.Rate.Option,
		Laps:            quote.Rate.Laps,
		DurationMinutes: quote.Rate.DurationMinutes,
		Persons:         booking.Persons(),
		TotalBeforeTax:  beforeTax,
		Total:           quote.Total.ChargeAmount(),
	}
}
