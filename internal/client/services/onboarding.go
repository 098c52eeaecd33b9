package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hros-ess/internal/client/store"
)

// OnboardingPages is the number of intro pages.
const OnboardingPages = 6

type OnboardingService struct {
	store store.OnboardingStore
}

func NewOnboardingService(st store.OnboardingStore) *OnboardingService {
	return &OnboardingService{store: st}
}

// NextPage returns the page after page. The welcome page jumps straight to
// the last one; done is true once the last page is left.
func NextPage(page int) (next int, done bool) {
	switch {
	case page <= 1:
		return OnboardingPages, false
	case page < OnboardingPages:
		return page + 1, false
	default:
		return 0, true
	}
}

// Finish marks onboarding as done so later starts skip it.
func (o *OnboardingService) Finish(ctx context.Context) error {
	if err := o.store.MarkOnboardingDone(ctx); err != nil {
		return fmt.Errorf("finish onboarding: %w", err)
	}
	return nil
}
