package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// OutboxEvent represents an enriched domain event ready for persistence.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	Payload      string // JSON
	Status       string
	RetryCount   int64
	ErrorMessage string
	CreatedAt    time.Time
	ProcessedAt  *time.Time
}

// OutboxRepository defines the interface for outbox event persistence.
type OutboxRepository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent
}

// EventFilter narrows ListEvents. Nil fields mean no filter.
type EventFilter struct {
	EventType   *string
	AggregateID *string
	Status      *string
	Limit       int64
}

// EventsReadModel lists outbox rows for inspection.
type EventsReadModel interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*OutboxEvent, error)
}

// OutboxQueue is the relay's view of the outbox.
type OutboxQueue interface {
	FetchPending(ctx context.Context, limit int64) ([]*OutboxEvent, error)
	MarkCompleted(ctx context.Context, eventID string) error
	MarkRetry(ctx context.Context, eventID, status string, retryCount int64, errMsg string) error
}
