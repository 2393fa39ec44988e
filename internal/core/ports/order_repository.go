package ports

import (
	"context"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, mutating, and deleting orders
// based on their identifier, status, and creation time.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no order has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus overwrites the status of the stored order in a single
	// conditional write and returns the updated aggregate. No other field is
	// touched. Returns ObjectNotFoundError when no order has that identifier.
	// Concurrent calls are last-write-wins at the store layer.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) (*order.Order, error)

	// GetAllByStatus retrieves all orders currently at the given status.
	// Result order is store-determined.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllCreatedSince retrieves all orders with a creation time at or after
	// the given instant. Used to implement "today's orders".
	GetAllCreatedSince(ctx context.Context, since time.Time) ([]*order.Order, error)

	// Delete permanently removes an order and returns the deleted aggregate
	// for confirmation. Returns ObjectNotFoundError when no order has that
	// identifier. Irreversible.
	Delete(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
