package queries

import (
	"errors"
	"time"

	"tableorders/internal/pkg/errs"
	"tableorders/internal/pkg/guard"
)

var (
	ErrGetOrdersCreatedSinceQueryIsNotConstructed = errors.New(
		"GetOrdersCreatedSinceQuery must be created via NewGetOrdersCreatedSinceQuery constructor",
	)
)

// GetOrdersCreatedSinceQuery retrieves all orders created at or after a given
// instant. The "today's orders" endpoint passes the start of the current
// calendar day in server-local time.
type GetOrdersCreatedSinceQuery struct {
	since time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersCreatedSinceQuery creates a query for orders created at or
// after since. The instant must be non-zero.
func NewGetOrdersCreatedSinceQuery(since time.Time) (GetOrdersCreatedSinceQuery, error) {
	if since.IsZero() {
		return GetOrdersCreatedSinceQuery{}, errs.NewValueIsRequiredError("since")
	}

	return GetOrdersCreatedSinceQuery{
		since: since,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersCreatedSinceQueryIsNotConstructed if validation fails.
func (q GetOrdersCreatedSinceQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersCreatedSinceQueryIsNotConstructed)
}

// Since returns the inclusive lower bound on creation time.
func (q GetOrdersCreatedSinceQuery) Since() time.Time {
	return q.since
}

// StartOfToday returns local midnight of the current calendar day,
// the lower bound used by the today listing.
func StartOfToday(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}
