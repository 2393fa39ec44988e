package commands

import (
	"context"

	"tableorders/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler confirms an order by id.
//
// Confirmation rides the same atomic conditional update as the general status
// update, so the convenience path and the direct path have identical race
// characteristics. A fetch-then-save here could lose a concurrent update
// between the fetch and the save.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation and returns the confirmed order.
// Returns ObjectNotFoundError when no order has the given identifier.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	confirmed, err := uow.OrderRepository().UpdateStatus(ctx, cmd.OrderID(), order.Confirmed)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return confirmed, nil
}
