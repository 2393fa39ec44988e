package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// scanOrderRows maps raw order rows onto OrderResponse values.
// Both order queries project the same columns in the same order.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id        uuid.UUID
			tableID   string
			items     []byte
			location  sql.NullString
			ip        sql.NullString
			status    int
			createdAt time.Time
		)

		if err := rows.Scan(&id, &tableID, &items, &location, &ip, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		var itemPayload []json.RawMessage
		if err = json.Unmarshal(items, &itemPayload); err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:        orderID,
			TableID:   tableID,
			Items:     itemPayload,
			Location:  location.String,
			IP:        ip.String,
			Status:    order.Status(status),
			CreatedAt: createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
