package integrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"droscher.com/BeerReview/configs"
	untappdweb "droscher.com/BeerReview/pkg/integrations/untappd-web"
	"droscher.com/BeerReview/pkg/model"
)

type Integration interface {
	FindBeer(ctx context.Context, name string) ([]model.BeerCandidate, error)
}

var (
	ErrUnknownIntegration = errors.New("unknown integration")
	ErrUnavailable        = errors.New("integration unavailable")
)

const (
	breakerInterval = time.Minute
	breakerTimeout  = 30 * time.Second
	breakerRequests = 3
	breakerFailures = 3
)

func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) (Integration, error) {
	if name == untappdweb.IntegrationName {
		return NewGuarded(name, untappdweb.NewUntappedWebIntegration(conf.UntappdBaseURL, logger), logger), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, name)
}

// Guarded trips a circuit breaker after consecutive lookup failures so a slow or
// blocking source is not hammered on every search.
type Guarded struct {
	next    Integration
	breaker *gobreaker.CircuitBreaker
}

func NewGuarded(name string, next Integration, logger *zap.Logger) *Guarded {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: breakerRequests,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("integration circuit breaker changed state",
				zap.String("integration", name), zap.Stringer("from", from), zap.Stringer("to", to))
		},
	}

	return &Guarded{next: next, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (g *Guarded) FindBeer(ctx context.Context, name string) ([]model.BeerCandidate, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.next.FindBeer(ctx, name)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	candidates, _ := result.([]model.BeerCandidate)

	return candidates, err
}

func (g *Guarded) State() gobreaker.State {
	return g.breaker.State()
}
