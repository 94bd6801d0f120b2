package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(cash, frequency int64) *Client {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return ReconstructClient("client-1", "12.345.678-9", "Ana", cash, frequency,
		time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), 3, created, created)
}

func TestLedger_Charge(t *testing.T) {
	ledger := NewLedger()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("debits balance and increments frequency", func(t *testing.T) {
		client := newTestClient(50000, 2)

		charged, err := ledger.Charge(client, 17850, now)
		require.NoError(t, err)

		assert.Equal(t, int64(32150), charged.Cash())
		assert.Equal(t, int64(3), charged.Frequency())
		assert.Equal(t, now, charged.UpdatedAt())
		assert.True(t, charged.Changes().Dirty(FieldCash))
		assert.True(t, charged.Changes().Dirty(FieldFrequency))
		assert.False(t, charged.Changes().Dirty(FieldName))
		assert.Equal(t, client.Version(), charged.Version())

		require.Len(t, charged.DomainEvents(), 1)
		event, ok := charged.DomainEvents()[0].(*ClientChargedEvent)
		require.True(t, ok)
		assert.Equal(t, int64(17850), event.Amount)
		assert.Equal(t, int64(32150), event.CashAfter)
	})

	t.Run("input client is left untouched", func(t *testing.T) {
		client := newTestClient(50000, 2)

		_, err := ledger.Charge(client, 17850, now)
		require.NoError(t, err)

		assert.Equal(t, int64(50000), client.Cash())
		assert.Equal(t, int64(2), client.Frequency())
		assert.False(t, client.Changes().HasChanges())
		assert.Empty(t, client.DomainEvents())
	})

	t.Run("exact balance leaves zero", func(t *testing.T) {
		client := newTestClient(17850, 0)

		charged, err := ledger.Charge(client, 17850, now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), charged.Cash())
	})

	t.Run("insufficient funds fails before mutating", func(t *testing.T) {
		client := newTestClient(10000, 0)

		charged, err := ledger.Charge(client, 17850, now)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Nil(t, charged)
		assert.Equal(t, int64(10000), client.Cash())
		assert.Equal(t, int64(0), client.Frequency())
	})

	t.Run("negative amount credits the balance", func(t *testing.T) {
		client := newTestClient(0, 0)

		charged, err := ledger.Charge(client, -3570, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3570), charged.Cash())
		assert.Equal(t, int64(1), charged.Frequency())
	})
}
