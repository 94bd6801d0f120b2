package txn

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
	"github.com/light-bringer/karting-service/internal/testutil/memstore"
)

func TestAddEvents(t *testing.T) {
	store := memstore.New(clock.NewMockClock(time.Now()))
	plan := committer.NewPlan()

	events := []domain.DomainEvent{
		&domain.KartRegisteredEvent{KartID: "k1", Code: "K-01", Available: true},
		&domain.KartAvailabilityChangedEvent{KartID: "k1", Available: false},
	}
	require.NoError(t, AddEvents(plan, store.Outbox(), events))
	assert.Equal(t, 2, plan.Count())
}

func TestCommitError(t *testing.T) {
	assert.NoError(t, CommitError(nil))

	conflict := errors.Join(errors.New("clients version expected 1, got 2"), committer.ErrVersionConflict)
	assert.ErrorIs(t, CommitError(conflict), domain.ErrConcurrentModification)

	err := CommitError(errors.New("spanner: deadline exceeded"))
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.Equal(t, "spanner: deadline exceeded", err.Error())
}
