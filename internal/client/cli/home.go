package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/client/services"
)

// attendanceTicks is how many clock updates "attendance live" prints.
var attendanceTicks = 3

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	st, err := a.dashboard.Load(ctx)
	if err != nil {
		return a.fail(err, "error.loadFailed")
	}
	d := st.Data

	a.println("==", a.t("dashboard.title"), "==")
	a.printf("%s #%s  %s\n", d.Employee.Name, d.Employee.EmpNo, d.Employee.Designation)
	if d.PhotoURL != "" {
		a.println("Photo:", d.PhotoURL)
	}

	a.println("--", a.t("dashboard.notices"), "--")
	if len(d.Notices) == 0 {
		a.println(a.t("common.noData"))
	}
	for _, n := range d.Notices {
		a.printf("* %s: %s\n", n.Title, n.Content)
	}

	a.println("--", a.t("dashboard.holidays"), "--")
	for _, h := range d.Holidays {
		marker := a.t("dashboard.past")
		if h.Upcoming {
			marker = a.t("dashboard.upcoming")
		}
		a.printf("%-12s %s (%s)\n", h.Holiday.Date, h.Name, marker)
	}

	names := make([]string, 0, len(d.Tiles))
	for _, tile := range d.Tiles {
		names = append(names, a.t(tile.Key))
	}
	a.println(strings.Join(names, " | "))
	return nil
}

// Attendance shows the clock. "remote" and "onsite" switch the mode, "live"
// follows the clock for a few seconds.
func (a *App) Attendance(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case string(services.AttendanceRemote):
			a.attendance.SetMode(services.AttendanceRemote)
		case string(services.AttendanceOnsite):
			a.attendance.SetMode(services.AttendanceOnsite)
		case "live":
			return a.attendanceLive(ctx)
		default:
			a.println("Usage: attendance [remote|onsite|live]")
			return nil
		}
	}
	a.printAttendance(a.attendance.Snapshot())
	return nil
}

func (a *App) attendanceLive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticks := a.attendance.Clock(ctx, time.Second)
	for i := 0; i < attendanceTicks; i++ {
		s, ok := <-ticks
		if !ok {
			return ctx.Err()
		}
		a.printAttendance(s)
	}
	return nil
}

func (a *App) printAttendance(s services.Attendance) {
	a.println("==", a.t("attendance.title"), "==")
	a.printf("%s  %s\n", s.Now.Format("15:04:05"), s.Now.Format("Monday, 02 January 2006"))
	a.printf("%s: %s\n", a.t("attendance.mode"), a.t("attendance."+string(s.Mode)))
	a.printf("Check-in %s  Check-out %s  Total %s\n", s.CheckIn, s.CheckOut, s.TotalHours)
}

func (a *App) Birthdays(ctx context.Context, _ []string) error {
	st, err := a.birthdays.Load(ctx)
	if err != nil {
		return a.fail(err, "error.loadFailed")
	}

	a.println("==", a.t("birthday.title"), "==")
	if len(st.Data.Upcoming) == 0 {
		a.println(a.t("birthday.none"))
		return nil
	}
	for _, b := range st.Data.Upcoming {
		a.printf("%s  %s (%s)\n", b.Date.Format("02 Jan"), b.Name, b.Designation)
	}
	return nil
}
