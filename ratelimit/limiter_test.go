package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoolingDown_UntrippedLimiter(t *testing.T) {
	l := NewLimiter()
	assert.False(t, l.CoolingDown())
}

func TestCoolingDown_TripAndExpire(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiterAt(func() time.Time { return clock })

	l.Trip()
	assert.True(t, l.CoolingDown(), "immediately after trip")

	clock = clock.Add(59 * time.Second)
	assert.True(t, l.CoolingDown(), "59s after trip")

	clock = clock.Add(1 * time.Second)
	assert.False(t, l.CoolingDown(), "60s after trip")

	clock = clock.Add(time.Hour)
	assert.False(t, l.CoolingDown(), "long after trip")
}

func TestTrip_RestartsWindow(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiterAt(func() time.Time { return clock })

	l.Trip()
	clock = clock.Add(90 * time.Second)
	assert.False(t, l.CoolingDown())

	l.Trip()
	assert.True(t, l.CoolingDown(), "second trip opens a fresh window")
}
