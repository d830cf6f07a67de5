package service

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/integrations"
	"droscher.com/BeerReview/pkg/metrics"
	"droscher.com/BeerReview/pkg/model"
)

// LookupService searches the configured external integrations for beers a user may
// want to add to the catalog.
type LookupService struct {
	integrations map[string]integrations.Integration
	order        []string
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewLookupService(sources map[string]integrations.Integration, order []string, m *metrics.Metrics, logger *zap.Logger) *LookupService {
	return &LookupService{integrations: sources, order: order, metrics: m, logger: logger}
}

// FindBeer keeps partial results; a failing integration is logged and skipped.
func (l *LookupService) FindBeer(ctx context.Context, query string) ([]model.BeerCandidate, error) {
	if query == "" {
		return nil, errs.Validation("q", "q cannot be empty")
	}

	var candidates []model.BeerCandidate

	for _, name := range l.order {
		integration, ok := l.integrations[name]
		if !ok {
			continue
		}

		found, err := integration.FindBeer(ctx, query)
		if err != nil {
			l.metrics.IncrementLookupFailures()
			l.logger.Error("failed beer search", zap.String("integration", name), zap.Error(err))
		}

		candidates = append(candidates, found...)
	}

	return candidates, nil
}
