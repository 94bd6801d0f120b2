package list_events

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
)

// Request contains filtering parameters for listing events.
type Request struct {
	EventType   *string // e.g. "booking.created"
	AggregateID *string
	Status      *string // "pending", "completed" or "failed"
	Limit       int64   // default 100, max 1000
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.EventsReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.EventsReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves outbox events, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.OutboxEvent, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	return q.readModel.ListEvents(ctx, contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Status:      req.Status,
		Limit:       limit,
	})
}
