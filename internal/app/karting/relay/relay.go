// Package relay forwards pending outbox events to the message broker.
package relay

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/models/m_outbox"
)

// Publisher delivers one encoded event. *mq.Publisher implements it.
type Publisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

// Relay polls the outbox and publishes events with their type as routing key.
type Relay struct {
	queue      contracts.OutboxQueue
	publisher  Publisher
	batchSize  int64
	maxRetries int64
	interval   time.Duration
}

const defaultInterval = 2 * time.Second

// New creates a Relay. maxRetries is the number of failed attempts after
// which an event is parked as failed.
func New(queue contracts.OutboxQueue, publisher Publisher, batchSize, maxRetries int64, interval time.Duration) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxRetries <= 0 {
		maxRetries = 1
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Relay{
		queue:      queue,
		publisher:  publisher,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		interval:   interval,
	}
}

// Stats summarizes one batch.
type Stats struct {
	Published int
	Retried   int
	Failed    int
}

// ProcessBatch publishes up to one batch of pending events, oldest first.
func (r *Relay) ProcessBatch(ctx context.Context) (Stats, error) {
	var stats Stats

	events, err := r.queue.FetchPending(ctx, r.batchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch pending events: %w", err)
	}

	for _, event := range events {
		pubErr := r.publisher.Publish(ctx, event.EventType, event.EventID, []byte(event.Payload))
		if pubErr == nil {
			if err := r.queue.MarkCompleted(ctx, event.EventID); err != nil {
				return stats, err
			}
			stats.Published++
			continue
		}

		attempts := event.RetryCount + 1
		status := m_outbox.StatusPending
		if attempts >= r.maxRetries {
			status = m_outbox.StatusFailed
			stats.Failed++
		} else {
			stats.Retried++
		}
		log.Printf("publish %s (%s) attempt %d failed: %v", event.EventID, event.EventType, attempts, pubErr)
		if err := r.queue.MarkRetry(ctx, event.EventID, status, attempts, pubErr.Error()); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// Run processes batches until ctx is done. A full batch is followed
// immediately by the next one.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		stats, err := r.ProcessBatch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("relay batch failed: %v", err)
		} else if stats.Published+stats.Failed+stats.Retried > 0 {
			log.Printf("relay: published=%d retried=%d failed=%d", stats.Published, stats.Retried, stats.Failed)
		}

		if err == nil && int64(stats.Published+stats.Retried+stats.Failed) == r.batchSize {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
