package chat

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Sender identifies which side of an order conversation wrote a message.
// Only the two order participants are valid senders.
type Sender int

const (
	// UnknownSender represents an invalid or undefined sender.
	UnknownSender Sender = iota

	// Customer is the order's customer.
	Customer

	// Courier is the courier assigned to (or taking part in) the order.
	Courier
)

// getSenderStrings returns the wire/string representation for every sender.
func getSenderStrings() map[Sender]string {
	return map[Sender]string{
		UnknownSender: "unknown",
		Customer:      "customer",
		Courier:       "courier",
	}
}

// SenderFromString parses the wire form ("customer" or "courier").
func SenderFromString(s string) (Sender, error) {
	switch s {
	case "customer":
		return Customer, nil
	case "courier":
		return Courier, nil
	default:
		return UnknownSender, errs.NewValueIsInvalidErrorWithCause("sender",
			fmt.Errorf("%q is not a valid sender", s))
	}
}

// Validate checks that the Sender is one of the two order participants.
func (s Sender) Validate() error {
	if s != Customer && s != Courier {
		return errs.NewValueIsInvalidErrorWithCause("sender",
			fmt.Errorf("%d is not a valid sender", s))
	}
	return nil
}

// String returns the wire form of the sender. Implements fmt.Stringer.
func (s Sender) String() string {
	if str, ok := getSenderStrings()[s]; ok {
		return str
	}
	return "unknown"
}
