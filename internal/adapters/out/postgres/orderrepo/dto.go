// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and creation time are indexed because the listing endpoints query on
// them; the line item payload is stored as the jsonb document it arrived as.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID   string    `gorm:"type:text;not null"`
	Items     []byte    `gorm:"type:jsonb;not null"`
	Location  string    `gorm:"type:text"`
	IP        string    `gorm:"type:text"`
	Status    int       `gorm:"type:smallint;index"`
	CreatedAt time.Time `gorm:"type:timestamptz;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// The item payload is marshalled into a single jsonb document.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		TableID:   aggregate.TableID(),
		Items:     items,
		Location:  aggregate.Location(),
		IP:        aggregate.IP(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err = json.Unmarshal(dto.Items, &items); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.TableID,
		items,
		dto.Location,
		dto.IP,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
