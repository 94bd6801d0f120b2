package issue_voucher

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// Request identifies the booking to issue a voucher for.
type Request struct {
	BookingID string
}

// Query regenerates the receipt of a booking.
type Query struct {
	bookingRepo contracts.BookingRepository
	clientRepo  contracts.ClientRepository
}

// NewQuery creates a new issue voucher query.
func NewQuery(bookingRepo contracts.BookingRepository, clientRepo contracts.ClientRepository) *Query {
	return &Query{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
	}
}

// Execute reprices the booking against its client's current state. Nothing
// is written; calling it twice yields the same voucher.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Voucher, error) {
	if req.BookingID == "" {
		return nil, domain.ErrInvalidArgument
	}

	booking, err := q.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	client, err := q.clientRepo.GetByRut(ctx, booking.ClientRut())
	if err != nil {
		return nil, err
	}

	quote, err := domain.QuoteBooking(booking.FeeOption(), booking.Persons(), booking.DateBooking(), booking.SpecialDay(), client)
	if err != nil {
		return nil, err
	}

	return domain.NewVoucher(booking, client, quote), nil
}
