package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersCreatedSinceQueryHandler reads order rows created at or after an
// instant from the database.
type GetOrdersCreatedSinceQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersCreatedSinceQueryHandler creates a handler for created-since queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersCreatedSinceQueryHandler(db *gorm.DB) GetOrdersCreatedSinceQueryHandler {
	return GetOrdersCreatedSinceQueryHandler{db: db}
}

// Handle executes the query and returns every order created at or after the bound.
// Results are sorted by creation time for consistent output.
func (h GetOrdersCreatedSinceQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersCreatedSinceQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_id,
			items,
			location,
			ip,
			status,
			created_at
		FROM orders
		WHERE created_at >= ?
		ORDER BY created_at
	`, query.Since()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
