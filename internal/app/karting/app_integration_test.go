//go:build integration

package karting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_client"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/issue_voucher"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_events"
	"github.com/light-bringer/karting-service/internal/app/karting/repo"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/create_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/delete_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_client"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
	"github.com/light-bringer/karting-service/internal/pkg/lock"
	"github.com/light-bringer/karting-service/internal/testutil/spannertest"
)

func TestBookingLifecycle_Spanner(t *testing.T) {
	client := spannertest.Setup(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	app := karting.New(karting.Deps{
		Clients:   repo.NewClientRepo(client),
		Bookings:  repo.NewBookingRepo(client),
		Karts:     repo.NewKartRepo(client),
		Outbox:    repo.NewOutboxRepo(client),
		Committer: committer.NewCommitter(client),
		Locker:    lock.NewLocalLocker(),
		Clock:     clock.NewMockClock(now),
	})

	registered, err := app.RegisterClient.Execute(ctx, &register_client.Request{
		Rut: "12.345.678-9", Name: "Ana Rojas", Cash: 50000,
	})
	require.NoError(t, err)

	start := now.Add(9 * time.Hour)
	booking, err := app.CreateBooking.Execute(ctx, &create_booking.Request{
		ClientRut:  "12.345.678-9",
		FeeOption:  1,
		Persons:    1,
		StartTime:  &start,
		MainPerson: "Ana Rojas",
		Code:       7,
	})
	require.NoError(t, err)
	assert.Equal(t, start.Add(30*time.Minute), booking.EndTime())

	after, err := app.GetClient.Execute(ctx, &get_client.Request{ClientID: registered.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(32150), after.Cash())
	assert.Equal(t, int64(1), after.Frequency())

	voucher, err := app.IssueVoucher.Execute(ctx, &issue_voucher.Request{BookingID: booking.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(15000), voucher.Fee)
	// frequency is now 1, still below the first frequency tier
	assert.Equal(t, int64(17850), voucher.Total)

	deleted, err := app.DeleteBooking.Execute(ctx, &delete_booking.Request{BookingID: booking.ID()})
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = app.DeleteBooking.Execute(ctx, &delete_booking.Request{BookingID: booking.ID()})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	events, err := app.ListEvents.Execute(ctx, &list_events.Request{})
	require.NoError(t, err)
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType)
	}
	assert.ElementsMatch(t, []string{"client.registered", "client.charged", "booking.created", "booking.deleted"}, types)
}
