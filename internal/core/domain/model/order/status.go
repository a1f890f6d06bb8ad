package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the delivery-lifecycle state of an assigned order.
// It implements a monotonic state machine with no backward transitions:
//
//	pending ──> accepted ──> pickedUp ──> delivered
//	                └────────────────────────┘
//	          (direct completion is allowed, see Complete)
//
// Accepting is the only entry point for courier assignment; delivered is
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order has been geocoded and stored
	// but no courier has accepted it yet.
	Pending

	// Accepted indicates a courier has claimed the order. From this point the
	// order is bound to that courier for its entire lifetime.
	Accepted

	// PickedUp indicates the courier has collected the order.
	PickedUp

	// Delivered indicates the order reached the customer. Terminal.
	Delivered
)

// getStatusStrings returns the wire/string representation for every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "pickedUp",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns only valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "pickedUp",
		Delivered: "delivered",
	}
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status ("pending", "accepted",
// "pickedUp", "delivered"); invalid values render as "unknown".
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateCanHaveCourier validates the consistency between status and courier
// assignment: a courier reference exists if and only if the order has left the
// pending state.
func (s Status) ValidateCanHaveCourier(hasCourier bool) error {
	if hasCourier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}

	if !hasCourier && (s == Accepted || s == PickedUp || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// Pending is the only status an order can be accepted from. Any other valid
// status means another courier already claimed the order, which surfaces as
// ErrOrderAlreadyTaken so callers can report the conflict.
func (s Status) Accept() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s != Pending {
		return 0, fmt.Errorf("%w: order is in %s status", ErrOrderAlreadyTaken, s)
	}

	return Accepted, nil
}

// PickUp transitions the status to PickedUp.
// Only Accepted orders can be picked up.
func (s Status) PickUp() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s != Accepted {
		return 0, fmt.Errorf("%w: cannot pick up order in %s status", ErrInvalidStatusTransition, s)
	}

	return PickedUp, nil
}

// Complete transitions the status to Delivered.
//
// Both Accepted and PickedUp orders can complete: the pickup step is not a
// prerequisite for delivery, only ownership is. Completing a Pending or
// Delivered order fails with ErrInvalidStatusTransition.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s != Accepted && s != PickedUp {
		return 0, fmt.Errorf("%w: cannot complete order in %s status", ErrInvalidStatusTransition, s)
	}

	return Delivered, nil
}
