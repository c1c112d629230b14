package delivery

import (
	"errors"
	"fmt"

	"deliveries/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions:
//
//	Ordered ──┬──> InTransit ──> Delivered
//	          │                      ^
//	          └──────────────────────┘
//	       (completion without assignment tolerated)
//
// Status only moves forward. Completing directly from Ordered is a deliberate
// leniency: with at-least-once, possibly reordered event delivery the
// assignment step may be missed or delayed, and refusing completion would
// wedge the record. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status of a delivery created from an accepted
	// order event. The delivery is waiting for a driver.
	Ordered

	// InTransit indicates a driver has been assigned and the order is on its way.
	InTransit

	// Delivered indicates the order reached the customer. Terminal state.
	Delivered
)

// ErrInvalidTransition is wrapped by every rejected state transition so the
// boundary layer can distinguish lifecycle conflicts from malformed input.
var ErrInvalidTransition = errors.New("invalid status transition")

// getStatusStrings maps all Status values to their wire representations.
// These strings appear in persisted records and in published events, so they
// are part of the service's external contract.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Ordered:   "ordered",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// getValidStatusStrings maps only valid Status values, for validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:   "ordered",
		InTransit: "in_transit",
		Delivered: "delivered",
	}
}

// StatusFromString parses a wire status string ("ordered", "in_transit",
// "delivered") into a Status. Any other value is invalid.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Assign transitions the status to InTransit.
//
// Valid transitions:
//   - Ordered -> InTransit
//
// Assignment from any other state is rejected: a delivery already in transit
// has its driver, and a delivered record is immutable.
func (s Status) Assign() (Status, error) {
	if s != Ordered {
		return Unknown, fmt.Errorf("%w: cannot assign a driver in status %s", ErrInvalidTransition, s)
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Ordered -> Delivered (assignment event missed or delayed)
//   - InTransit -> Delivered
//   - Delivered -> Delivered (idempotent no-op, re-delivered events are expected)
func (s Status) Complete() (Status, error) {
	switch s {
	case Ordered, InTransit, Delivered:
		return Delivered, nil
	default:
		return Unknown, fmt.Errorf("%w: cannot complete a delivery in status %s", ErrInvalidTransition, s)
	}
}

// ValidateCanHaveDriver checks the consistency between status and driver assignment.
//
// Rules:
//   - Ordered deliveries must not have a driver
//   - InTransit deliveries must have a driver (assignment is the only way in)
//   - Delivered deliveries may or may not have one (completion is accepted
//     straight from Ordered)
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s == Ordered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s delivery cannot have a driver", s))
	}

	if !hasDriver && s == InTransit {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s delivery must have a driver", s))
	}

	return nil
}
