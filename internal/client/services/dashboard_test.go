package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/common"
)

func TestSortHolidays(t *testing.T) {
	now := time.Date(2026, time.October, 16, 15, 0, 0, 0, time.UTC)
	in := []models.Holiday{
		{Name: "Republic Day", Date: "2026-11-11"},
		{Name: "Unknown", Date: "someday"},
		{Name: "Today", Date: "2026-10-16"},
		{Name: "Independence Day", Date: "2026-07-26"},
	}

	got := SortHolidays(in, now)
	require.Len(t, got, 4)

	var names []string
	for _, h := range got {
		names = append(names, h.Name.String())
	}
	assert.Equal(t, []string{"Independence Day", "Today", "Republic Day", "Unknown"}, names)
	assert.False(t, got[0].Upcoming)
	assert.True(t, got[1].Upcoming)
	assert.True(t, got[2].Upcoming)
	assert.False(t, got[3].Upcoming)
	assert.True(t, got[3].Date.IsZero())
}

func TestDashboard_Load(t *testing.T) {
	fc := &fakeClient{
		EmployeeRet: models.Employee{EmpNo: "E1001", Name: "Jane Doe"},
		DocumentsRet: []models.Document{
			{DocType: "Passport", FrontFileName: "p.pdf"},
			{DocType: "Photo", PhotoFileName: "E1001_photo.jpg"},
		},
		NoticesRet:  []models.Notice{{Title: "Town hall"}},
		HolidaysRet: []models.Holiday{{Name: "B", Date: "2026-12-01"}, {Name: "A", Date: "2026-01-01"}},
	}
	svc := NewDashboardService(fc, loggedIn(t))
	svc.now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local) }

	d, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "E1001", fc.LastEmpNo)
	assert.Equal(t, "Jane Doe", d.Employee.Name.String())
	assert.Equal(t, "https://files.test/E1001_photo.jpg", d.PhotoURL)
	assert.Len(t, d.Notices, 1)
	require.Len(t, d.Holidays, 2)
	assert.Equal(t, "A", d.Holidays[0].Name.String())
	assert.Len(t, d.Tiles, 9)
}

func TestDashboard_NoPhoto(t *testing.T) {
	fc := &fakeClient{EmployeeRet: models.Employee{EmpNo: "E1001"}}
	d, err := NewDashboardService(fc, loggedIn(t)).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, d.PhotoURL)
}

func TestDashboard_AnyFailureFailsLoad(t *testing.T) {
	fc := &fakeClient{HolidaysErr: assert.AnError}
	_, err := NewDashboardService(fc, loggedIn(t)).Load(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}

func TestDashboard_NotLoggedIn(t *testing.T) {
	svc := NewDashboardService(&fakeClient{}, NewSessionService(setupStore(t), nop()))
	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}
