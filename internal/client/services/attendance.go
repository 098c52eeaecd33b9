package services

import (
	"context"
	"sync"
	"time"
)

type AttendanceMode string

const (
	AttendanceRemote AttendanceMode = "remote"
	AttendanceOnsite AttendanceMode = "onsite"
)

// Attendance is the clock view. The backend has no attendance records, so
// the summary is always blank.
type Attendance struct {
	Now        time.Time
	Mode       AttendanceMode
	CheckIn    string
	CheckOut   string
	TotalHours string
}

const noValue = "--"

type AttendanceService struct {
	mu   sync.Mutex
	mode AttendanceMode
	now  func() time.Time
}

func NewAttendanceService() *AttendanceService {
	return &AttendanceService{mode: AttendanceRemote, now: time.Now}
}

func (a *AttendanceService) SetMode(m AttendanceMode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = m
}

func (a *AttendanceService) Snapshot() Attendance {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Attendance{
		Now:        a.now(),
		Mode:       a.mode,
		CheckIn:    noValue,
		CheckOut:   noValue,
		TotalHours: noValue,
	}
}

// Clock sends a snapshot every interval until ctx is done, then closes the
// channel.
func (a *AttendanceService) Clock(ctx context.Context, interval time.Duration) <-chan Attendance {
	out := make(chan Attendance, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case out <- a.Snapshot():
				default:
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
