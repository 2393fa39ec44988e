// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate and read projection rows straight from
// the database; they never mutate state.
package queries

import (
	"encoding/json"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
)

// OrderResponse is the read-model row returned by the order queries.
// Items are carried as the opaque payload they were stored with.
type OrderResponse struct {
	ID        kernel.UUID
	TableID   string
	Items     []json.RawMessage
	Location  string
	IP        string
	Status    order.Status
	CreatedAt time.Time
}
