package list_bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

func TestListBookings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := memstore.New(clock.NewMockClock(now))

	seed := func(id, rut string, startOffset time.Duration) {
		start := now.Add(startOffset)
		store.SeedBooking(domain.ReconstructBooking(id, rut, 1, 1, now, start, start.Add(30*time.Minute), 30, false, "x", 0, now))
	}
	seed("b1", "rut-a", 1*time.Hour)
	seed("b2", "rut-b", 2*time.Hour)
	seed("b3", "rut-a", 3*time.Hour)

	query := NewQuery(store.Bookings())

	t.Run("all, latest start first", func(t *testing.T) {
		bookings, err := query.Execute(ctx, &Request{})
		require.NoError(t, err)
		require.Len(t, bookings, 3)
		assert.Equal(t, "b3", bookings[0].ID())
		assert.Equal(t, "b2", bookings[1].ID())
		assert.Equal(t, "b1", bookings[2].ID())
	})

	t.Run("by client", func(t *testing.T) {
		bookings, err := query.Execute(ctx, &Request{ClientRut: "rut-a"})
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		for _, b := range bookings {
			assert.Equal(t, "rut-a", b.ClientRut())
		}
	})

	t.Run("limit", func(t *testing.T) {
		bookings, err := query.Execute(ctx, &Request{Limit: 1})
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "b3", bookings[0].ID())
	})
}
