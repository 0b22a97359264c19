package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

func TestMemoCacheHit(t *testing.T) {
	c := newMemoCache(0)
	rows := []schema.Observation{{Country: "A", Year: 2019}}

	c.put("k", rows)

	got, ok := c.get("k")
	assert.True(t, ok)
	assert.Equal(t, rows, got)

	_, ok = c.get("other")
	assert.False(t, ok)
}

func TestMemoCacheExpiry(t *testing.T) {
	c := newMemoCache(time.Hour)

	now := time.Unix(1700000000, 0)
	c.now = func() time.Time { return now }

	c.put("k", []schema.Observation{{Country: "A", Year: 2019}})

	_, ok := c.get("k")
	assert.True(t, ok)

	now = now.Add(time.Hour + time.Minute)
	_, ok = c.get("k")
	assert.False(t, ok)
}

func TestMemoCacheZeroTTLNeverExpires(t *testing.T) {
	c := newMemoCache(0)

	now := time.Unix(1700000000, 0)
	c.now = func() time.Time { return now }

	c.put("k", nil)

	now = now.Add(1000 * time.Hour)
	_, ok := c.get("k")
	assert.True(t, ok)
}
