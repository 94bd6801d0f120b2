package update_client

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

func TestUpdateClient(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	dob := time.Date(1992, 8, 20, 0, 0, 0, 0, time.UTC)

	setup := func() (*memstore.Store, *Interactor) {
		clk := clock.NewMockClock(now)
		store := memstore.New(clk)
		store.SeedClient(domain.ReconstructClient("client-1", "11.111.111-1", "Pedro Soto", 40000, 3, dob, 4, now, now))
		return store, NewInteractor(store.Clients(), store.Outbox(), store, clk)
	}

	t.Run("replaces profile fields and keeps frequency", func(t *testing.T) {
		store, interactor := setup()

		updated, err := interactor.Execute(ctx, &Request{ClientID: "client-1", Name: "Pedro Soto Díaz", Cash: 90000, DateOfBirth: dob})
		require.NoError(t, err)
		assert.Equal(t, int64(5), updated.Version())

		stored, err := store.Clients().GetByID(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, "Pedro Soto Díaz", stored.Name())
		assert.Equal(t, int64(90000), stored.Cash())
		assert.Equal(t, int64(3), stored.Frequency())
		assert.Equal(t, int64(5), stored.Version())

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "client.updated", events[0].EventType)
	})

	t.Run("identical values commit nothing", func(t *testing.T) {
		store, interactor := setup()

		_, err := interactor.Execute(ctx, &Request{ClientID: "client-1", Name: "Pedro Soto", Cash: 40000, DateOfBirth: dob})
		require.NoError(t, err)
		assert.Equal(t, 0, store.Commits())
	})

	t.Run("concurrent booking wins", func(t *testing.T) {
		store, interactor := setup()
		store.BeforeCommit = func() {
			store.SeedClient(domain.ReconstructClient("client-1", "11.111.111-1", "Pedro Soto", 22150, 4, dob, 5, now, now))
		}

		_, err := interactor.Execute(ctx, &Request{ClientID: "client-1", Name: "Pedro", Cash: 1, DateOfBirth: dob})
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)

		stored, err := store.Clients().GetByID(ctx, "client-1")
		require.NoError(t, err)
		assert.Equal(t, int64(22150), stored.Cash())
	})

	t.Run("errors", func(t *testing.T) {
		_, interactor := setup()

		_, err := interactor.Execute(ctx, &Request{Name: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = interactor.Execute(ctx, &Request{ClientID: "nope", Name: "x"})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)

		_, err = interactor.Execute(ctx, &Request{ClientID: "client-1", Name: "x", Cash: -5})
		assert.ErrorIs(t, err, domain.ErrNegativeBalance)
	})
}
