package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendance_Snapshot(t *testing.T) {
	at := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)
	a := NewAttendanceService()
	a.now = func() time.Time { return at }

	s := a.Snapshot()
	assert.Equal(t, Attendance{Now: at, Mode: AttendanceRemote, CheckIn: "--", CheckOut: "--", TotalHours: "--"}, s)

	a.SetMode(AttendanceOnsite)
	assert.Equal(t, AttendanceOnsite, a.Snapshot().Mode)
}

func TestAttendance_ClockStopsWithContext(t *testing.T) {
	a := NewAttendanceService()
	ctx, cancel := context.WithCancel(context.Background())
	ch := a.Clock(ctx, 5*time.Millisecond)

	select {
	case s := <-ch:
		assert.Equal(t, AttendanceRemote, s.Mode)
	case <-time.After(2 * time.Second):
		t.Fatal("no tick")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 5*time.Millisecond)
}
