package get_kart

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

func TestGetKart(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := memstore.New(clock.NewMockClock(now))
	store.SeedKart(domain.ReconstructKart("kart-1", "K001", false, now, now))
	query := NewQuery(store.Karts())

	kart, err := query.Execute(ctx, &Request{KartID: "kart-1"})
	require.NoError(t, err)
	assert.Equal(t, "K001", kart.Code())
	assert.False(t, kart.Available())

	_, err = query.Execute(ctx, &Request{KartID: "missing"})
	assert.ErrorIs(t, err, domain.ErrKartNotFound)

	_, err = query.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
