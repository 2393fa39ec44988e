package commands

import (
	"encoding/json"
	"errors"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
	"tableorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new table order.
// Encapsulates the table identifier, the opaque line item payload, and the
// optional location/ip metadata. The order always starts out pending; no
// authorization is required to place one.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []json.RawMessage{json.RawMessage(`{"name":"Tea"}`)}
//	cmd, err := NewCreateOrderCommand(orderID, "T1", items, "terrace", clientIP)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tableID  string
	items    []json.RawMessage
	location string
	ip       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the table ID is not empty, and the
// item payload has at least one entry. Location and ip are stored as given.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableID string,
	items []json.RawMessage,
	location string,
	ip string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		location: location,
		ip:       ip,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableID(tableID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableID returns the identifier of the table placing the order.
func (c CreateOrderCommand) TableID() string {
	return c.tableID
}

// Items returns the opaque line item payload.
func (c CreateOrderCommand) Items() []json.RawMessage {
	return c.items
}

// Location returns the optional location metadata.
func (c CreateOrderCommand) Location() string {
	return c.location
}

// IP returns the optional ip metadata.
func (c CreateOrderCommand) IP() string {
	return c.ip
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID string) error {
	if tableID == "" {
		return errs.NewValueIsRequiredError("tableId")
	}

	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setItems(items []json.RawMessage) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
