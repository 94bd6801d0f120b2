package get_booking

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// Request contains the booking ID to retrieve.
type Request struct {
	BookingID string
}

// Query handles the get booking query use case.
type Query struct {
	repo contracts.BookingRepository
}

// NewQuery creates a new get booking query.
func NewQuery(repo contracts.BookingRepository) *Query {
	return &Query{repo: repo}
}

// Execute retrieves a booking by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, domain.ErrInvalidArgument
	}
	return q.repo.GetByID(ctx, req.BookingID)
}
