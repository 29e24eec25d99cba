package countdown

import (
	"sort"
	"strings"

	cderrors "countdown/internal/errors"
	"countdown/pkg/models"
)

// Order selects how upcoming events are arranged for display.
type Order string

const (
	// OrderTimeAsc shows the soonest event first.
	OrderTimeAsc Order = "time-asc"
	// OrderTimeDesc shows the farthest event first.
	OrderTimeDesc Order = "time-desc"
	// OrderShuffle shows events in a random order.
	OrderShuffle Order = "shuffle"
)

// DefaultOrder is used when no order is requested.
const DefaultOrder = OrderTimeAsc

// Orders lists the accepted order names.
var Orders = []Order{OrderShuffle, OrderTimeAsc, OrderTimeDesc}

// ParseOrder maps an order name to an Order. The empty string is the default.
func ParseOrder(s string) (Order, error) {
	if s == "" {
		return DefaultOrder, nil
	}
	for _, o := range Orders {
		if Order(s) == o {
			return o, nil
		}
	}
	return "", cderrors.Newf(cderrors.KindInvalidArgument,
		"invalid order %q (must be one of: %s)", s, OrderNames())
}

// OrderNames returns the accepted order names, comma separated.
func OrderNames() string {
	names := make([]string, len(Orders))
	for i, o := range Orders {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}

// RandSource yields uniform integers in [0, n). *math/rand/v2.Rand satisfies
// it.
type RandSource interface {
	IntN(n int) int
}

// Arrange returns a copy of items in the given order. Time orders are stable,
// so equal day counts keep their input order. rnd is only used for
// OrderShuffle.
func Arrange(items []models.Countdown, order Order, rnd RandSource) []models.Countdown {
	out := make([]models.Countdown, len(items))
	copy(out, items)

	switch order {
	case OrderShuffle:
		// Fisher-Yates.
		for i := len(out) - 1; i > 0; i-- {
			j := rnd.IntN(i + 1)
			out[i], out[j] = out[j], out[i]
		}
	case OrderTimeDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DaysLeft > out[j].DaysLeft
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DaysLeft < out[j].DaysLeft
		})
	}
	return out
}
