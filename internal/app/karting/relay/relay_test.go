package relay

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_outbox"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

type published struct {
	routingKey, messageID, body string
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []published
	fail map[string]error // by routing key
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.fail[routingKey]; err != nil {
		return err
	}
	p.sent = append(p.sent, published{routingKey, messageID, string(body)})
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

func seedEvents(t *testing.T, store *memstore.Store, events ...domain.DomainEvent) {
	t.Helper()
	outbox := store.Outbox()
	plan := committer.NewPlan()
	for _, e := range events {
		plan.Add(outbox.InsertMut(outbox.EnrichEvent(e, `{"id":"`+e.AggregateID()+`"}`)))
	}
	require.NoError(t, store.Apply(context.Background(), plan))
}

func TestRelay_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes oldest first and marks completed", func(t *testing.T) {
		store := memstore.New(clock.NewMockClock(time.Now()))
		seedEvents(t, store,
			&domain.BookingCreatedEvent{BookingID: "b1"},
			&domain.ClientChargedEvent{ClientID: "c1"},
		)
		pub := &fakePublisher{}

		stats, err := New(store.Outbox(), pub, 10, 3, time.Second).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, Stats{Published: 2}, stats)

		require.Len(t, pub.sent, 2)
		assert.Equal(t, "booking.created", pub.sent[0].routingKey)
		assert.Equal(t, `{"id":"b1"}`, pub.sent[0].body)
		assert.Equal(t, "client.charged", pub.sent[1].routingKey)

		sentIDs := []string{pub.sent[0].messageID, pub.sent[1].messageID}
		for _, e := range store.Events() {
			assert.Equal(t, m_outbox.StatusCompleted, e.Status)
			assert.NotNil(t, e.ProcessedAt)
			assert.Contains(t, sentIDs, e.EventID)
		}

		// nothing left
		stats, err = New(store.Outbox(), pub, 10, 3, time.Second).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, Stats{}, stats)
	})

	t.Run("failures are retried then parked", func(t *testing.T) {
		store := memstore.New(clock.NewMockClock(time.Now()))
		seedEvents(t, store, &domain.BookingDeletedEvent{BookingID: "b1"})
		pub := &fakePublisher{fail: map[string]error{"booking.deleted": errors.New("channel closed")}}
		relay := New(store.Outbox(), pub, 10, 2, time.Second)

		stats, err := relay.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, Stats{Retried: 1}, stats)
		event := store.Events()[0]
		assert.Equal(t, m_outbox.StatusPending, event.Status)
		assert.Equal(t, int64(1), event.RetryCount)
		assert.Equal(t, "channel closed", event.ErrorMessage)

		stats, err = relay.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, Stats{Failed: 1}, stats)
		event = store.Events()[0]
		assert.Equal(t, m_outbox.StatusFailed, event.Status)
		assert.Equal(t, int64(2), event.RetryCount)

		// parked events are no longer fetched
		stats, err = relay.ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, Stats{}, stats)
	})

	t.Run("batch size bounds one pass", func(t *testing.T) {
		store := memstore.New(clock.NewMockClock(time.Now()))
		seedEvents(t, store,
			&domain.KartRegisteredEvent{KartID: "k1"},
			&domain.KartRegisteredEvent{KartID: "k2"},
			&domain.KartRegisteredEvent{KartID: "k3"},
		)
		pub := &fakePublisher{}

		stats, err := New(store.Outbox(), pub, 2, 3, time.Second).ProcessBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Published)
		assert.Equal(t, "k1", store.Events()[0].AggregateID)
		assert.Equal(t, m_outbox.StatusCompleted, store.Events()[0].Status)
		assert.Equal(t, m_outbox.StatusPending, store.Events()[2].Status)
	})
}

func TestRelay_RunStopsWithContext(t *testing.T) {
	store := memstore.New(clock.NewMockClock(time.Now()))
	seedEvents(t, store, &domain.KartRegisteredEvent{KartID: "k1"})
	pub := &fakePublisher{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(store.Outbox(), pub, 10, 3, 5*time.Millisecond).Run(ctx) }()

	require.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestRelay_NonPositiveIntervalUsesDefault(t *testing.T) {
	store := memstore.New(clock.NewMockClock(time.Now()))
	seedEvents(t, store, &domain.KartRegisteredEvent{KartID: "k1"})
	pub := &fakePublisher{}

	for _, interval := range []time.Duration{0, -time.Second} {
		r := New(store.Outbox(), pub, 10, 3, interval)
		assert.Equal(t, defaultInterval, r.interval)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(store.Outbox(), pub, 10, 3, 0).Run(ctx) }()

	require.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}
