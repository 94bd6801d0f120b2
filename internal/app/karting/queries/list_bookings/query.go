package list_bookings

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Request contains filtering parameters for listing bookings.
type Request struct {
	ClientRut string // empty lists every client
	Limit     int64
}

// Query handles the list bookings query use case.
type Query struct {
	repo contracts.BookingRepository
}

// NewQuery creates a new list bookings query.
func NewQuery(repo contracts.BookingRepository) *Query {
	return &Query{repo: repo}
}

// Execute returns bookings ordered by start time, latest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Booking, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return q.repo.List(ctx, contracts.BookingFilter{
		ClientRut: req.ClientRut,
		Limit:     limit,
	})
}
