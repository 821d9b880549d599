package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGet_Miss(t *testing.T) {
	c := New[string](time.Minute)
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestSetGet_WithinTTL(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewAt[string](5*time.Minute, func() time.Time { return clock })

	c.Set("q", "result")

	clock = clock.Add(4 * time.Minute)
	v, ok := c.Get("q")
	assert.True(t, ok)
	assert.Equal(t, "result", v)
}

func TestGet_EvictsExpired(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewAt[string](5*time.Minute, func() time.Time { return clock })

	c.Set("q", "result")

	clock = clock.Add(5 * time.Minute)
	_, ok := c.Get("q")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry is removed on read")
}

func TestSet_OverwritesAndRefreshes(t *testing.T) {
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewAt[int](5*time.Minute, func() time.Time { return clock })

	c.Set("q", 1)
	clock = clock.Add(4 * time.Minute)
	c.Set("q", 2)

	clock = clock.Add(4 * time.Minute)
	v, ok := c.Get("q")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
