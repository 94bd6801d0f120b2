package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	assert.Equal(t, start, clk.Now())

	clk.Advance(30 * time.Minute)
	assert.Equal(t, start.Add(30*time.Minute), clk.Now())

	later := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk.Set(later)
	assert.Equal(t, later, clk.Now())
}

func TestRealClock_ReturnsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewRealClock().Now().Location())
}
