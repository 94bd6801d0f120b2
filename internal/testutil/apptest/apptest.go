// Package apptest builds a karting.App on top of memstore for transport tests.
package apptest

import (
	"time"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/lock"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

// Now is the fixed instant the mock clock starts at.
var Now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// New returns an App backed by an empty in-memory store.
func New() (*karting.App, *memstore.Store, *clock.MockClock) {
	clk := clock.NewMockClock(Now)
	store := memstore.New(clk)
	app := karting.New(karting.Deps{
		Clients:   store.Clients(),
		Bookings:  store.Bookings(),
		Karts:     store.Karts(),
		Outbox:    store.Outbox(),
		Committer: store,
		Locker:    lock.NewLocalLocker(),
		Clock:     clk,
	})
	return app, store, clk
}
