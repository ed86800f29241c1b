package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Processing ──> Shipped ──> Delivered
//
// Progression is strictly forward: repeated shipments, backward moves and
// any exit from Delivered are rejected with a specific reason.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status when an order is first placed.
	// Orders in this status are waiting to be shipped; no stock has been
	// committed to them yet.
	Processing

	// Shipped indicates the order has left the warehouse. Entering this
	// status is the only transition with an inventory side effect: every
	// line item's stock is decremented exactly once.
	Shipped

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
	}
}

// StatusFromString parses a status name as received from external callers.
// Matching is exact on the canonical names "Processing", "Shipped" and
// "Delivered".
//
// Returns:
//   - the parsed Status on success
//   - (Unknown, error) if the name does not denote a valid status
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Processing, Shipped, Delivered.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Processing", "Shipped", or "Delivered" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateShip checks if the status allows shipment without performing
// the transition.
//
// Rejections, in precedence order:
//   - Delivered: terminal state, nothing may leave it
//   - Shipped: repeated shipments are rejected, not silently accepted
//   - anything but Processing: invalid starting state
//
// Returns:
//   - nil if shipment is allowed from the current status
//   - errs.IllegalTransitionError (or validation error) otherwise
//
// Callers use this for pre-validation before committing stock decrements,
// so an order that cannot ship is discovered before any inventory moves.
func (s Status) ValidateShip() error {
	if s == Delivered {
		return errs.NewIllegalTransitionError(s.String(), Shipped.String(), "order already delivered")
	}
	if s == Shipped {
		return errs.NewIllegalTransitionError(s.String(), Shipped.String(), "order already shipped")
	}
	if s != Processing {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a valid status to ship", s.String()))
	}
	return nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Processing -> Shipped
//
// Invalid transitions:
//   - Shipped -> Shipped (already shipped)
//   - Delivered -> Shipped (terminal state)
//   - Unknown -> Shipped (invalid initial state)
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Ship() to enforce state transitions. The
// inventory side effect of shipment is owned by the shipment domain
// service, not by the status machine.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateShip(); err != nil {
		return 0, err
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Invalid transitions:
//   - Processing -> Delivered (must be shipped first)
//   - Delivered -> Delivered (terminal state)
//   - Unknown -> Delivered (invalid initial state)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.Deliver() to enforce state transitions.
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s == Delivered {
		return 0, errs.NewIllegalTransitionError(s.String(), Delivered.String(), "order already delivered")
	}
	if s == Processing {
		return 0, errs.NewIllegalTransitionError(s.String(), Delivered.String(), "order must be shipped first")
	}
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}

	return Delivered, nil
}

// Transition decides whether the requested status may follow the current
// one, applying the state machine's rules in precedence order:
//
//  1. Delivered is terminal: any request is rejected.
//  2. Shipped -> Shipped is rejected as a no-op, never silently accepted.
//  3. Backward movement (to Processing) is rejected.
//  4. Otherwise the forward edge is taken.
//
// Returns:
//   - (newStatus, nil) if the transition is legal
//   - (0, error) carrying the specific rejection reason otherwise
//
// Transition is pure: it never applies side effects. Stamping delivery
// time and decrementing stock belong to Order and the shipment service.
func (s Status) Transition(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}
	if s == Delivered {
		return 0, errs.NewIllegalTransitionError(s.String(), requested.String(), "order already delivered")
	}

	switch requested {
	case Shipped:
		return s.Ship()
	case Delivered:
		return s.Deliver()
	default: // Processing
		if s == Shipped {
			return 0, errs.NewIllegalTransitionError(s.String(), requested.String(), "cannot move an order backward")
		}
		return 0, errs.NewIllegalTransitionError(s.String(), requested.String(), "order already processing")
	}
}
