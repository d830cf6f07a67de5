// Package service is the review rule engine: it validates payloads, applies the
// rate limit and uniqueness rules and drives the store inside transactions.
package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"droscher.com/BeerReview/configs"
	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/metrics"
	"droscher.com/BeerReview/pkg/repository"
)

const tracerName = "droscher.com/BeerReview/pkg/service"

// Clock returns the current time; tests replace it to move the rolling windows.
type Clock func() time.Time

var defaultRules = configs.Rules{BeerWindow: 24 * time.Hour, RatingWindow: 7 * 24 * time.Hour}

type core struct {
	store   repository.Store
	logger  *zap.Logger
	metrics *metrics.Metrics
	rules   configs.Rules
	now     Clock
	tracer  trace.Tracer
}

type Option func(*core)

func WithClock(clock Clock) Option {
	return func(c *core) {
		c.now = clock
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *core) {
		c.metrics = m
	}
}

func WithRules(rules configs.Rules) Option {
	return func(c *core) {
		c.rules = rules
	}
}

type Services struct {
	Users     *UserService
	Glasses   *GlassService
	Beers     *BeerService
	Ratings   *RatingService
	Favorites *FavoriteService
}

func New(store repository.Store, logger *zap.Logger, opts ...Option) *Services {
	c := &core{
		store:  store,
		logger: logger,
		rules:  defaultRules,
		now:    time.Now,
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	return &Services{
		Users:     &UserService{core: c},
		Glasses:   &GlassService{core: c},
		Beers:     &BeerService{core: c},
		Ratings:   &RatingService{core: c},
		Favorites: &FavoriteService{core: c},
	}
}

func (c *core) span(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, name)
}

// created records a successful creation.
func (c *core) created(entity string, fields ...zap.Field) {
	c.metrics.IncrementCreated(entity)
	c.logger.Info(entity+" created", fields...)
}

// rejected records a write refused by a rule and passes the error through.
func (c *core) rejected(ctx context.Context, entity string, err error) error {
	kind := errs.KindOf(err)
	if kind == errs.KindRateLimited || kind == errs.KindConflict {
		c.metrics.IncrementRejected(entity, string(kind))
		trace.SpanFromContext(ctx).RecordError(err)
		c.logger.Info("write rejected", zap.String("entity", entity), zap.String("kind", string(kind)), zap.Error(err))
	}

	return err
}
