// Package lock serializes work per key, e.g. all bookings of one client.
package lock

import (
	"context"
	"errors"
)

// ErrNotAcquired is returned when the lock could not be taken before the
// wait budget or the context ran out.
var ErrNotAcquired = errors.New("lock not acquired")

// Locker grants exclusive access to a key. The returned release function
// must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}
