package issue_voucher

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

var (
	bookedOn = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	start    = time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
)

func setup(t *testing.T, feeOption int64) (*memstore.Store, *clock.MockClock, *Query) {
	t.Helper()
	clk := clock.NewMockClock(bookedOn)
	store := memstore.New(clk)
	store.SeedClient(domain.ReconstructClient("client-1", "12.345.678-9", "Ana Rojas", 50000, 0, time.Time{}, 1, bookedOn, bookedOn))
	store.SeedBooking(domain.ReconstructBooking("booking-1", "12.345.678-9", feeOption, 4, bookedOn,
		start, start.Add(30*time.Minute), 30, false, "Ana Rojas", 7, bookedOn))
	return store, clk, NewQuery(store.Bookings(), store.Clients())
}

func TestIssueVoucher(t *testing.T) {
	ctx := context.Background()

	t.Run("reprices the booking", func(t *testing.T) {
		_, clk, query := setup(t, 1)
		clk.Advance(72 * time.Hour)

		voucher, err := query.Execute(ctx, &Request{BookingID: "booking-1"})
		require.NoError(t, err)

		assert.Equal(t, "booking-1", voucher.BookingID)
		assert.Equal(t, "Ana Rojas", voucher.Name)
		assert.Equal(t, "12.345.678-9", voucher.Rut)
		assert.Equal(t, int64(15000), voucher.Fee)
		assert.InDelta(t, 0.10, voucher.Discount, 1e-9)
		assert.Equal(t, int64(13500), voucher.TotalBeforeTax)
		assert.Equal(t, int64(2565), voucher.Tax)
		assert.Equal(t, int64(16065), voucher.Total)
		assert.Equal(t, int64(10), voucher.Laps)
		assert.Equal(t, int64(30), voucher.DurationMinutes)
		assert.Equal(t, bookedOn, voucher.DateBooking, "date is the booking's, not now")
	})

	t.Run("idempotent and read-only", func(t *testing.T) {
		store, _, query := setup(t, 1)

		first, err := query.Execute(ctx, &Request{BookingID: "booking-1"})
		require.NoError(t, err)
		second, err := query.Execute(ctx, &Request{BookingID: "booking-1"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 0, store.Commits())

		client, err := store.Clients().GetByRut(ctx, "12.345.678-9")
		require.NoError(t, err)
		assert.Equal(t, int64(50000), client.Cash())
		assert.Equal(t, int64(0), client.Frequency())
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, query := setup(t, 1)

		_, err := query.Execute(ctx, &Request{BookingID: "does-not-exist"})
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})

	t.Run("client removed since booking", func(t *testing.T) {
		store, _, _ := setup(t, 1)
		empty := memstore.New(clock.NewMockClock(bookedOn))
		query := NewQuery(store.Bookings(), empty.Clients())

		_, err := query.Execute(ctx, &Request{BookingID: "booking-1"})
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})

	t.Run("stored fee option outside the catalog", func(t *testing.T) {
		_, _, query := setup(t, 9)

		_, err := query.Execute(ctx, &Request{BookingID: "booking-1"})
		assert.ErrorIs(t, err, domain.ErrInvalidFeeOption)
	})

	t.Run("empty id", func(t *testing.T) {
		_, _, query := setup(t, 1)

		_, err := query.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}
