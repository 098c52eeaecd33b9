package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hros-ess/internal/client/client"
	"github.com/dmitrijs2005/hros-ess/internal/client/models"
)

type HandbookService struct {
	client client.Client
}

func NewHandbookService(c client.Client) *HandbookService {
	return &HandbookService{client: c}
}

func (h *HandbookService) Load(ctx context.Context) ([]models.HandbookSection, error) {
	return h.client.Handbook(ctx)
}

// SearchHandbook keeps the subsections whose heading or content contains
// keyword, ignoring case, and drops sections left empty. An empty keyword
// returns sections unchanged.
func SearchHandbook(sections []models.HandbookSection, keyword string) []models.HandbookSection {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return sections
	}

	var out []models.HandbookSection
	for _, s := range sections {
		var matched []models.HandbookSubsection
		for _, sub := range s.Subsections {
			if strings.Contains(strings.ToLower(sub.SubHeading), kw) ||
				strings.Contains(strings.ToLower(sub.Content), kw) {
				matched = append(matched, sub)
			}
		}
		if len(matched) > 0 {
			out = append(out, models.HandbookSection{MainHeading: s.MainHeading, Subsections: matched})
		}
	}
	return out
}
