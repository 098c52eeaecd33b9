package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
)

// Tile is a dashboard shortcut to a feature view.
type Tile struct {
	Key   string
	Route Route
}

// DashboardTiles are shown in this order.
var DashboardTiles = []Tile{
	{"tile.attendance", "/attendance"},
	{"tile.leave", "/leave"},
	{"tile.profile", "/profile"},
	{"tile.payroll", "/payroll"},
	{"tile.documents", "/documents"},
	{"tile.handbook", "/handbook"},
	{"tile.chat", "/chat"},
	{"tile.birthdays", "/birthday"},
	{"tile.settings", "/settings"},
}

type HolidayEntry struct {
	models.Holiday
	Date     time.Time
	Upcoming bool
}

type Dashboard struct {
	Employee models.Employee
	PhotoURL string
	Notices  []models.Notice
	Holidays []HolidayEntry
	Tiles    []Tile
}

type DashboardService struct {
	client  client.Client
	session *SessionService
	now     func() time.Time
}

func NewDashboardService(c client.Client, session *SessionService) *DashboardService {
	return &DashboardService{client: c, session: session, now: time.Now}
}

// Load fetches employee, documents, notices and holidays in parallel. Any
// failure fails the whole load.
func (d *DashboardService) Load(ctx context.Context) (Dashboard, error) {
	empNo, err := d.session.RequireEmpNo()
	if err != nil {
		return Dashboard{}, err
	}

	var (
		emp      models.Employee
		docs     []models.Document
		notices  []models.Notice
		holidays []models.Holiday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		emp, err = d.client.Employee(gctx, empNo)
		return err
	})
	g.Go(func() (err error) {
		docs, err = d.client.Documents(gctx, empNo)
		return err
	})
	g.Go(func() (err error) {
		notices, err = d.client.Notices(gctx)
		return err
	})
	g.Go(func() (err error) {
		holidays, err = d.client.Holidays(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	if photo := models.PhotoFileName(docs); photo != "" {
		emp.PhotoFileName = models.FlexString(photo)
	}
	out := Dashboard{
		Employee: emp,
		Notices:  notices,
		Holidays: SortHolidays(holidays, d.now()),
		Tiles:    DashboardTiles,
	}
	if emp.PhotoFileName != "" {
		out.PhotoURL = d.client.FileURL(emp.PhotoFileName.String())
	}
	return out, nil
}

// SortHolidays orders holidays by date and marks those on or after the day
// of now. Holidays with an unreadable date go last.
func SortHolidays(holidays []models.Holiday, now time.Time) []HolidayEntry {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]HolidayEntry, 0, len(holidays))
	for _, h := range holidays {
		e := HolidayEntry{Holiday: h}
		if t, ok := h.Date.Time(now.Location()); ok {
			e.Date = t
			e.Upcoming = !t.Before(today)
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Date, out[j].Date
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.Before(b)
	})
	return out
}
