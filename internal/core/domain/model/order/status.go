package order

import (
	"fmt"

	"tableorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a table order.
//
// The vocabulary is fixed and ordered by intended progression:
//
//	pending → confirmed → received → preparing → ready → serving → completed
//
// with cancelled reachable as an out-of-band terminal state. The service
// validates membership in the vocabulary, not sequencing between states:
// any member may replace any member. Tightening this into a transition
// graph is a product decision that has deliberately not been taken.
//
// Status is a value object that provides the exact wire strings
// (lowercase, case-sensitive) for persistence and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every new order.
	Pending

	// Confirmed indicates staff have accepted the order.
	Confirmed

	// Received indicates the kitchen has picked up the order.
	Received

	// Preparing indicates the order is being prepared.
	Preparing

	// Ready indicates the order is ready to leave the kitchen.
	Ready

	// Serving indicates the order is being brought to the table.
	Serving

	// Completed indicates the order has been served and closed out.
	Completed

	// Cancelled indicates the order was abandoned. Reachable from any state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire strings.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Serving:   "serving",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only vocabulary members are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Serving:   "serving",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// Statuses returns the vocabulary members in progression order, cancelled last.
// Used by callers that need to enumerate every valid state.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Received, Preparing, Ready, Serving, Completed, Cancelled}
}

// StatusFromString parses a wire string into a Status.
// Matching is exact and case-sensitive; anything outside the vocabulary
// yields a ValueIsInvalidError.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a vocabulary member.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire string of the status.
// Implements fmt.Stringer; safe to call on any Status value, including
// invalid ones, which all render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
