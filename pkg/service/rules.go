package service

import (
	"context"
	"time"

	"droscher.com/BeerReview/pkg/errs"
	"droscher.com/BeerReview/pkg/repository"
)

// Rule messages returned to the caller.
const (
	MessageBeerRateLimited   = "user already created a beer today"
	MessageRatingRateLimited = "user already created a rating this week"
	MessageAlreadyReviewed   = "user already reviewed this beer"
)

// withinWindow reports whether created lies inside the rolling window ending now.
func (c *core) withinWindow(created time.Time, window time.Duration) bool {
	return created.After(c.now().Add(-window))
}

// checkBeerRules must run inside the creating transaction after the author's row
// has been locked.
func (c *core) checkBeerRules(ctx context.Context, store repository.Store, userID uint) error {
	latest, err := store.GetLatestBeerByUser(ctx, userID)
	if err != nil {
		return err
	}

	if latest != nil && c.withinWindow(latest.CreatedAt, c.rules.BeerWindow) {
		return errs.RateLimited(MessageBeerRateLimited, latest)
	}

	return nil
}

// checkRatingRules evaluates both the weekly rate limit and the one rating per
// beer rule. Both always run; the rate limit wins when both fail.
func (c *core) checkRatingRules(ctx context.Context, store repository.Store, userID uint, beerID uint) error {
	var limited error

	latest, err := store.GetLatestRatingByUser(ctx, userID)
	if err != nil {
		return err
	}

	if latest != nil && c.withinWindow(latest.CreatedAt, c.rules.RatingWindow) {
		limited = errs.RateLimited(MessageRatingRateLimited, latest)
	}

	reviewed, err := store.HasRating(ctx, userID, beerID)
	if err != nil {
		return err
	}

	switch {
	case limited != nil:
		return limited
	case reviewed:
		return errs.Conflict(MessageAlreadyReviewed, nil)
	default:
		return nil
	}
}
