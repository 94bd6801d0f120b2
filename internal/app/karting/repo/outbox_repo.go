package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_outbox"
	"github.com/light-bringer/karting-service/internal/pkg/query"
)

// OutboxRepo implements OutboxRepository, EventsReadModel and OutboxQueue for Spanner.
type OutboxRepo struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(client *spanner.Client) *OutboxRepo {
	return &OutboxRepo{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	return r.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     spanner.NullJSON{Value: jsonValue(event.Payload), Valid: event.Payload != ""},
		Status:      event.Status,
	})
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return EnrichEvent(event, payload)
}

// EnrichEvent assigns an id and the pending status to a serialized domain event.
func EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

// ListEvents returns outbox rows, newest first.
func (r *OutboxRepo) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.OutboxEvent, error) {
	q := query.From(m_outbox.TableName).Select(m_outbox.Columns...)
	if filter.EventType != nil {
		q = q.Where(query.Eq(m_outbox.EventType, *filter.EventType))
	}
	if filter.AggregateID != nil {
		q = q.Where(query.Eq(m_outbox.AggregateID, *filter.AggregateID))
	}
	if filter.Status != nil {
		q = q.Where(query.Eq(m_outbox.Status, *filter.Status))
	}
	q = q.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(filter.Limit)

	return r.queryEvents(ctx, q.Build())
}

// FetchPending returns the oldest pending events.
func (r *OutboxRepo) FetchPending(ctx context.Context, limit int64) ([]*contracts.OutboxEvent, error) {
	stmt := query.From(m_outbox.TableName).
		Select(m_outbox.Columns...).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusPending)).
		OrderBy(m_outbox.CreatedAt, query.Asc).
		Limit(limit).
		Build()

	return r.queryEvents(ctx, stmt)
}

// MarkCompleted flags an event as delivered.
func (r *OutboxRepo) MarkCompleted(ctx context.Context, eventID string) error {
	if _, err := r.client.Apply(ctx, []*spanner.Mutation{r.model.MarkCompletedMut(eventID)}); err != nil {
		return fmt.Errorf("failed to mark event %s completed: %w", eventID, err)
	}
	return nil
}

// MarkRetry records a failed delivery attempt.
func (r *OutboxRepo) MarkRetry(ctx context.Context, eventID, status string, retryCount int64, errMsg string) error {
	mut := r.model.MarkRetryMut(eventID, status, retryCount, errMsg)
	if _, err := r.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("failed to record retry for event %s: %w", eventID, err)
	}
	return nil
}

func (r *OutboxRepo) queryEvents(ctx context.Context, stmt spanner.Statement) ([]*contracts.OutboxEvent, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	events := make([]*contracts.OutboxEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, dataToOutboxEvent(&data))
	}
	return events, nil
}

func dataToOutboxEvent(data *m_outbox.Data) *contracts.OutboxEvent {
	event := &contracts.OutboxEvent{
		EventID:     data.EventID,
		EventType:   data.EventType,
		AggregateID: data.AggregateID,
		Status:      data.Status,
		RetryCount:  data.RetryCount,
		CreatedAt:   data.CreatedAt,
	}
	if data.Payload.Valid {
		event.Payload = data.Payload.String()
	}
	if data.ErrorMessage.Valid {
		event.ErrorMessage = data.ErrorMessage.StringVal
	}
	if data.ProcessedAt.Valid {
		t := data.ProcessedAt.Time
		event.ProcessedAt = &t
	}
	return event
}

func processedBefore(status string, cutoff time.Time) *query.Builder {
	return query.From(m_outbox.TableName).
		Where(query.Eq(m_outbox.Status, status)).
		Where(query.Lt(m_outbox.ProcessedAt, cutoff))
}

// CountProcessedBefore counts events in status whose processed_at is older than cutoff.
func (r *OutboxRepo) CountProcessedBefore(ctx context.Context, status string, cutoff time.Time) (int64, error) {
	iter := r.client.Single().Query(ctx, processedBefore(status, cutoff).Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s events: %w", status, err)
	}
	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to scan count: %w", err)
	}
	return count, nil
}

// PurgeProcessedBefore deletes events in status whose processed_at is older
// than cutoff. Runs as partitioned DML so large backlogs do not hit the
// mutation limit; the returned count is a lower bound.
func (r *OutboxRepo) PurgeProcessedBefore(ctx context.Context, status string, cutoff time.Time) (int64, error) {
	stmt := spanner.Statement{
		SQL: "DELETE FROM " + m_outbox.TableName +
			" WHERE " + m_outbox.Status + " = @status AND " + m_outbox.ProcessedAt + " < @cutoff",
		Params: map[string]interface{}{"status": status, "cutoff": cutoff},
	}
	n, err := r.client.PartitionedUpdate(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to purge %s events: %w", status, err)
	}
	return n, nil
}
