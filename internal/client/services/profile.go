package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
	"github.com/dmitrijs2005/hros-ess/internal/common"
	"github.com/dmitrijs2005/hros-ess/internal/logging"
)

type Profile struct {
	Employee models.Employee
	PhotoURL string
}

// DisplayName is the employee name followed by "#emp_no".
func (p Profile) DisplayName() string {
	name := p.Employee.Name.String()
	if name == "" {
		name = "Employee"
	}
	return fmt.Sprintf("%s #%s", name, p.Employee.EmpNo)
}

// ProfileService loads the profile and applies confirmed updates to the
// copy it holds.
type ProfileService struct {
	client  client.Client
	session *SessionService
	log     logging.Logger

	mu      sync.Mutex
	current Profile
}

func NewProfileService(c client.Client, session *SessionService, log logging.Logger) *ProfileService {
	return &ProfileService{client: c, session: session, log: log}
}

func (p *ProfileService) Load(ctx context.Context) (Profile, error) {
	empNo, err := p.session.RequireEmpNo()
	if err != nil {
		return Profile{}, err
	}

	var (
		emp  models.Employee
		docs []models.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		emp, err = p.client.Employee(gctx, empNo)
		return err
	})
	g.Go(func() (err error) {
		docs, err = p.client.Documents(gctx, empNo)
		if err != nil {
			p.log.Warn(gctx, "profile photo unavailable", "emp_no", empNo, "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Profile{}, err
	}

	prof := Profile{Employee: emp}
	if photo := models.PhotoFileName(docs); photo != "" {
		prof.Employee.PhotoFileName = models.FlexString(photo)
	}
	if prof.Employee.PhotoFileName != "" {
		prof.PhotoURL = p.client.FileURL(prof.Employee.PhotoFileName.String())
	}

	p.mu.Lock()
	p.current = prof
	p.mu.Unlock()
	return prof, nil
}

func (p *ProfileService) Current() Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Update validates upd, sends it and merges it into the held profile. All
// five fields are required; nothing is sent otherwise.
func (p *ProfileService) Update(ctx context.Context, upd models.ProfileUpdate) (Profile, error) {
	empNo, err := p.session.RequireEmpNo()
	if err != nil {
		return Profile{}, err
	}
	if missing := upd.Missing(); len(missing) > 0 {
		return Profile{}, fmt.Errorf("%w: %w: %s", common.ErrorValidation, common.ErrMissingFields, strings.Join(missing, ", "))
	}

	if err := p.client.UpdateProfile(ctx, empNo, upd); err != nil {
		return Profile{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.current.Employee = upd.Apply(p.current.Employee)
	p.log.Info(ctx, "profile updated", "emp_no", empNo)
	return p.current, nil
}
