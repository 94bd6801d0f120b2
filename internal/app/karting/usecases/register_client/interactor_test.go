package register_client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

func TestRegisterClient(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	dob := time.Date(1992, 8, 20, 0, 0, 0, 0, time.UTC)

	setup := func() (*memstore.Store, *Interactor) {
		clk := clock.NewMockClock(now)
		store := memstore.New(clk)
		return store, NewInteractor(store.Clients(), store.Outbox(), store, clk)
	}

	t.Run("creates a client with zero visits", func(t *testing.T) {
		store, interactor := setup()

		client, err := interactor.Execute(ctx, &Request{Rut: "11.111.111-1", Name: "Pedro Soto", Cash: 40000, DateOfBirth: dob})
		require.NoError(t, err)
		assert.NotEmpty(t, client.ID())
		assert.Equal(t, int64(0), client.Frequency())
		assert.False(t, client.Changes().HasChanges())

		stored, err := store.Clients().GetByRut(ctx, "11.111.111-1")
		require.NoError(t, err)
		assert.Equal(t, client.ID(), stored.ID())
		assert.Equal(t, int64(40000), stored.Cash())
		assert.True(t, dob.Equal(stored.DateOfBirth()))

		events := store.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "client.registered", events[0].EventType)
	})

	t.Run("duplicate rut", func(t *testing.T) {
		store, interactor := setup()
		_, err := interactor.Execute(ctx, &Request{Rut: "11.111.111-1", Name: "Pedro Soto", Cash: 40000})
		require.NoError(t, err)

		_, err = interactor.Execute(ctx, &Request{Rut: "11.111.111-1", Name: "Otro", Cash: 1})
		assert.ErrorIs(t, err, domain.ErrClientAlreadyExists)
		assert.Equal(t, 1, store.Commits())
	})

	t.Run("validation", func(t *testing.T) {
		_, interactor := setup()

		_, err := interactor.Execute(ctx, &Request{Name: "Pedro Soto"})
		assert.ErrorIs(t, err, domain.ErrEmptyRut)

		_, err = interactor.Execute(ctx, &Request{Rut: "11.111.111-1"})
		assert.ErrorIs(t, err, domain.ErrEmptyName)

		_, err = interactor.Execute(ctx, &Request{Rut: "11.111.111-1", Name: "Pedro Soto", Cash: -1})
		assert.ErrorIs(t, err, domain.ErrNegativeBalance)
	})

	t.Run("lookup failure is a store error", func(t *testing.T) {
		store, interactor := setup()
		store.ReadErr = errors.New("spanner: unavailable")

		_, err := interactor.Execute(ctx, &Request{Rut: "11.111.111-1", Name: "Pedro Soto"})
		assert.ErrorIs(t, err, domain.ErrStoreFailure)
		assert.Equal(t, "spanner: unavailable", err.Error())
	})
}
