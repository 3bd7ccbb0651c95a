package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSession_SeriesFor(t *testing.T) {
	t.Parallel()

	echo := &DeviceTelemetrySeries{Profile: NewDeviceProfile("Amazon Echo", 20000, 15000)}
	nest := &DeviceTelemetrySeries{Profile: NewDeviceProfile("Google Nest", 18000, 12000)}
	session := &ReportSession{ID: "session-1", Series: []*DeviceTelemetrySeries{echo, nest}}

	got, ok := session.SeriesFor("Google Nest")
	require.True(t, ok)
	assert.Same(t, nest, got)

	_, ok = session.SeriesFor("Ring Doorbell")
	assert.False(t, ok)

	assert.Equal(t, []string{"Amazon Echo", "Google Nest"}, session.DeviceNames())
}

func TestNewSessionSnapshot(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 11, 26, 0, 0, 0, 0, time.UTC)
	grid := TimeGrid{start, start.Add(15 * time.Minute), start.Add(30 * time.Minute)}
	series := []*DeviceTelemetrySeries{{Profile: NewDeviceProfile("Amazon Echo", 20000, 15000)}}
	session := &ReportSession{
		ID:          "session-1",
		CreatedAt:   start.Add(time.Hour),
		Seed:        42,
		StepMinutes: 15,
		Grid:        grid,
		Series:      series,
	}

	snapshot := NewSessionSnapshot(session)

	assert.Equal(t, "session-1", snapshot.SessionID)
	assert.Equal(t, uint64(42), snapshot.Seed)
	assert.Equal(t, 15, snapshot.StepMinutes)
	assert.Equal(t, start, snapshot.GridStart)
	assert.Equal(t, start.Add(30*time.Minute), snapshot.GridEnd)
	assert.Equal(t, 3, snapshot.SampleCount)
	assert.Equal(t, series, snapshot.Series)
}

func TestTimeGrid_EmptyBounds(t *testing.T) {
	t.Parallel()

	var grid TimeGrid
	assert.Equal(t, 0, grid.Len())
	assert.True(t, grid.Start().IsZero())
	assert.True(t, grid.End().IsZero())
}
