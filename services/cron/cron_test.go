package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterJobsSchedulesDailyPurge(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.registerJobs())

	entries := m.cron.Entries()
	require.Len(t, entries, 1)

	// Daily at 03:00, with seconds precision.
	from := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	next := entries[0].Schedule.Next(from)
	assert.Equal(t, time.Date(2025, 6, 2, 3, 0, 0, 0, time.UTC), next)
	assert.Equal(t, time.Date(2025, 6, 3, 3, 0, 0, 0, time.UTC), entries[0].Schedule.Next(next))
}

func TestPurgeCutoff(t *testing.T) {
	now := time.Date(2025, 7, 31, 3, 0, 0, 0, time.UTC)

	cutoff := purgeCutoff(now)
	assert.Equal(t, time.Date(2025, 7, 1, 3, 0, 0, 0, time.UTC), cutoff)

	// A record deleted just inside the window survives; an older one does
	// not.
	assert.True(t, now.Add(-deletedRetention+time.Minute).After(cutoff))
	assert.False(t, now.Add(-deletedRetention-time.Minute).After(cutoff))
}
