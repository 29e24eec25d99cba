// Package countdown turns stored events into the ordered list of upcoming
// countdowns shown to the user.
package countdown

import (
	"fmt"
	"time"

	"countdown/internal/calendar"
	cderrors "countdown/internal/errors"
	"countdown/internal/logger"
	"countdown/internal/random"
	"countdown/pkg/models"
)

// Loader supplies the stored events.
type Loader interface {
	Load() ([]models.Event, error)
}

// Options controls ordering and truncation.
type Options struct {
	// Order defaults to OrderTimeAsc when empty.
	Order Order
	// Limit caps the number of countdowns. Nil means no limit; a supplied
	// limit must be positive.
	Limit *int
	// Rand drives OrderShuffle. Nil means a crypto-seeded source.
	Rand RandSource
}

// List loads events once and returns the upcoming countdowns relative to now.
// Loader errors are returned unchanged.
func List(loader Loader, now time.Time, opts Options) ([]models.Countdown, error) {
	events, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return Upcoming(now, events, opts)
}

// Limit returns n as an Options.Limit value.
func Limit(n int) *int { return &n }

// Upcoming computes the days left for each event relative to now's calendar
// day, drops past events, orders the rest and applies the limit. An event
// dated today has zero days left and is kept.
func Upcoming(now time.Time, events []models.Event, opts Options) ([]models.Countdown, error) {
	if opts.Limit != nil && *opts.Limit <= 0 {
		return nil, cderrors.Newf(cderrors.KindInvalidArgument, "limit must be a positive integer, got %d", *opts.Limit)
	}
	order, err := ParseOrder(string(opts.Order))
	if err != nil {
		return nil, err
	}

	today := calendar.FromTime(now)
	upcoming := make([]models.Countdown, 0, len(events))
	for _, e := range events {
		days := e.DaysLeft(today)
		if days < 0 {
			continue
		}
		upcoming = append(upcoming, models.Countdown{Name: e.Name, DaysLeft: days})
	}
	logger.Debugf("countdown: %d of %d events upcoming on %s, order %s", len(upcoming), len(events), today, order)

	rnd := opts.Rand
	if order == OrderShuffle && rnd == nil {
		src, err := random.NewSeededSource()
		if err != nil {
			return nil, fmt.Errorf("shuffle: %w", err)
		}
		rnd = src
	}
	arranged := Arrange(upcoming, order, rnd)

	if opts.Limit != nil && len(arranged) > *opts.Limit {
		arranged = arranged[:*opts.Limit]
	}
	return arranged, nil
}
