package services

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
)

const dateKeyLayout = "2006-01-02"

type BirthdayCalendar struct {
	Upcoming []models.UpcomingBirthday
	// Marks maps YYYY-MM-DD to the names celebrating that day.
	Marks map[string][]string
}

type BirthdayService struct {
	client client.Client
	now    func() time.Time
}

func NewBirthdayService(c client.Client) *BirthdayService {
	return &BirthdayService{client: c, now: time.Now}
}

func (b *BirthdayService) Load(ctx context.Context) (BirthdayCalendar, error) {
	list, err := b.client.Birthdays(ctx)
	if err != nil {
		return BirthdayCalendar{}, err
	}
	return PlaceBirthdays(list, b.now()), nil
}

// PlaceBirthdays moves every date of birth into the year of now and sorts
// by it. Entries without a readable date of birth are skipped.
func PlaceBirthdays(list []models.Birthday, now time.Time) BirthdayCalendar {
	cal := BirthdayCalendar{Marks: map[string][]string{}}
	for _, b := range list {
		dob, ok := b.DOB.Time(now.Location())
		if !ok {
			continue
		}
		day := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
		cal.Upcoming = append(cal.Upcoming, models.UpcomingBirthday{Birthday: b, Date: day})
	}
	sort.SliceStable(cal.Upcoming, func(i, j int) bool {
		return cal.Upcoming[i].Date.Before(cal.Upcoming[j].Date)
	})
	for _, u := range cal.Upcoming {
		key := u.Date.Format(dateKeyLayout)
		cal.Marks[key] = append(cal.Marks[key], u.Name.String())
	}
	return cal
}
