package services

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
)

type LeaveBalance struct {
	Type string
	Days string
}

type LeaveOverview struct {
	Balances []LeaveBalance
	History  []models.LeaveRecord
}

type LeaveService struct {
	client  client.Client
	session *SessionService
}

func NewLeaveService(c client.Client, session *SessionService) *LeaveService {
	return &LeaveService{client: c, session: session}
}

// Load fetches balances and history in parallel. Balances are sorted by
// leave type.
func (l *LeaveService) Load(ctx context.Context) (LeaveOverview, error) {
	empNo, err := l.session.RequireEmpNo()
	if err != nil {
		return LeaveOverview{}, err
	}

	var (
		balances models.LeaveBalances
		history  []models.LeaveRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		balances, err = l.client.LeaveBalances(gctx, empNo)
		return err
	})
	g.Go(func() (err error) {
		history, err = l.client.LeaveHistory(gctx, empNo)
		return err
	})
	if err := g.Wait(); err != nil {
		return LeaveOverview{}, err
	}

	out := LeaveOverview{History: history}
	for typ, days := range balances {
		out.Balances = append(out.Balances, LeaveBalance{Type: typ, Days: days.String()})
	}
	sort.Slice(out.Balances, func(i, j int) bool { return out.Balances[i].Type < out.Balances[j].Type })
	return out, nil
}

// FilterLeaves keeps the records whose leave type contains query, ignoring
// case. An empty query keeps everything.
func FilterLeaves(records []models.LeaveRecord, query string) []models.LeaveRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	var out []models.LeaveRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.LeaveType.String()), q) {
			out = append(out, r)
		}
	}
	return out
}
