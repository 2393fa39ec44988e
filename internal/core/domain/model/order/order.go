package order

import (
	"encoding/json"
	"errors"
	"time"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a single table's food/drink request. It is the aggregate root
// that owns the lifecycle status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, assigned at creation and never reused
//   - Must reference a table (non-empty table identifier)
//   - Must carry at least one line item
//   - Status is always a vocabulary member; only status is mutable after creation
//   - Can only be created through NewOrder or RestoreOrder
//
// Line items are an opaque pass-through payload: the service stores and returns
// them untouched and no operation mutates them. The optional location and ip
// metadata strings are likewise pass-through.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableID identifies the physical table the order belongs to
	tableID string

	// items is the non-empty line item payload, opaque to the service
	items []json.RawMessage

	// location is optional pass-through metadata
	location string

	// ip is optional pass-through metadata
	ip string

	// status is the current vocabulary member; the only mutable field
	status Status

	// createdAt is assigned by the service at creation time
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh order, ensuring all business invariants hold.
//
// The order starts in Pending status. createdAt is assigned by the caller
// (the lifecycle service), never by the client.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid)
//   - tableID: Identifier of the physical table (must be non-empty)
//   - items: Line item payload (must have at least one entry)
//   - location, ip: Optional metadata, stored as given
//   - createdAt: Creation timestamp (must be non-zero)
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	tableID string,
	items []json.RawMessage,
	location string,
	ip string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		location:      location,
		ip:            ip,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableID(tableID),
		order.setItems(items),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts any vocabulary member as the status, since the
// stored record may be anywhere in its lifecycle. Used by persistence
// adapters only.
func RestoreOrder(
	id kernel.UUID,
	tableID string,
	items []json.RawMessage,
	location string,
	ip string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, tableID, items, location, ip, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the identifier of the table the order belongs to.
func (o *Order) TableID() string {
	return o.tableID
}

// Items returns the opaque line item payload.
func (o *Order) Items() []json.RawMessage {
	return o.items
}

// Location returns the optional location metadata.
func (o *Order) Location() string {
	return o.location
}

// IP returns the optional ip metadata.
func (o *Order) IP() string {
	return o.ip
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the service-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus replaces the order's status with newStatus.
//
// The only rule enforced is vocabulary membership: transitions between
// members are unrestricted, matching the permissive lifecycle this service
// exposes. Returns a validation error for non-members and leaves the order
// unchanged.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTableID validates and sets the table identifier.
// This is a private method used only during construction.
func (o *Order) setTableID(tableID string) error {
	if tableID == "" {
		return errs.NewValueIsRequiredError("tableId")
	}
	o.tableID = tableID
	return nil
}

// setItems validates and sets the line item payload.
// At least one item is required.
// This is a private method used only during construction.
func (o *Order) setItems(items []json.RawMessage) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
