package list_events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

type recordingReadModel struct {
	filter contracts.EventFilter
}

func (r *recordingReadModel) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.OutboxEvent, error) {
	r.filter = filter
	return nil, nil
}

func TestListEvents_Limits(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name      string
		requested int64
		want      int64
	}{
		{"default", 0, 100},
		{"negative", -5, 100},
		{"within range", 25, 25},
		{"capped", 5000, 1000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rm := &recordingReadModel{}
			_, err := NewQuery(rm).Execute(ctx, &Request{Limit: tc.requested})
			require.NoError(t, err)
			assert.Equal(t, tc.want, rm.filter.Limit)
		})
	}
}

func TestListEvents_Filters(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
	outbox := store.Outbox()

	plan := committer.NewPlan()
	for _, e := range []domain.DomainEvent{
		&domain.KartRegisteredEvent{KartID: "k1", Code: "K001"},
		&domain.KartRegisteredEvent{KartID: "k2", Code: "K002"},
		&domain.KartAvailabilityChangedEvent{KartID: "k1"},
	} {
		plan.Add(outbox.InsertMut(outbox.EnrichEvent(e, "{}")))
	}
	require.NoError(t, store.Apply(ctx, plan))

	query := NewQuery(outbox)

	events, err := query.Execute(ctx, &Request{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "kart.availability_changed", events[0].EventType, "newest first")

	eventType := "kart.registered"
	events, err = query.Execute(ctx, &Request{EventType: &eventType})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	aggregate := "k1"
	events, err = query.Execute(ctx, &Request{AggregateID: &aggregate})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	status := "completed"
	events, err = query.Execute(ctx, &Request{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, events)
}
