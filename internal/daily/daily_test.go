package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyCentralBoundary(t *testing.T) {
	// 05:59 UTC is still the previous day in UTC-6; 06:00 UTC is midnight.
	before := time.Date(2026, 3, 14, 5, 59, 0, 0, time.UTC)
	after := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-13", DateKey(before))
	assert.Equal(t, "2026-03-14", DateKey(after))
}

func TestDateKeyIgnoresServerZone(t *testing.T) {
	utc := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	tokyo := utc.In(time.FixedZone("JST", 9*60*60))
	assert.Equal(t, DateKey(utc), DateKey(tokyo))
}

func TestTargetIndexDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, TargetIndex("2026-01-15", 70), TargetIndex("2026-01-15", 70))
	}
	assert.NotPanics(t, func() { TargetIndex("2026-01-15", 0) })
	assert.Equal(t, 0, TargetIndex("2026-01-15", 0))
	assert.Equal(t, 0, TargetIndex("2026-01-15", 1))
}

func TestTargetIndexSpreadsOverYear(t *testing.T) {
	const n = 70
	hit := make(map[int]int)
	day := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		idx := TargetIndex(DateKey(day), n)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, n)
		hit[idx]++
		day = day.AddDate(0, 0, 1)
	}
	// A year of dates should cover a large fraction of the dataset and no
	// single city should monopolize the selection.
	assert.Greater(t, len(hit), n/2)
	for idx, count := range hit {
		assert.Less(t, count, 30, "index %d selected %d times", idx, count)
	}
}

func TestNextReset(t *testing.T) {
	// 23:00 Central → one hour to the reset.
	at := time.Date(2026, 5, 10, 23, 0, 0, 0, time.FixedZone("CST", -6*60*60))
	assert.Equal(t, time.Hour, NextReset(at))

	// Just after midnight Central → nearly a full day.
	at = time.Date(2026, 5, 10, 0, 1, 0, 0, time.FixedZone("CST", -6*60*60))
	assert.Equal(t, 23*time.Hour+59*time.Minute, NextReset(at))
}
