package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. A shipped or delivered order cannot
// be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order. Line
	// items may only be changed while the order is pending.
	Pending

	// Confirmed indicates the order has been accepted and frozen; its line
	// items can no longer change.
	Confirmed

	// Shipped indicates the order has left the warehouse. A shipped order
	// can no longer be cancelled.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn before shipment. Terminal.
	Cancelled
)

// Action names the guarded transitions of the order state machine. The
// action name is carried inside lifecycle errors and event payloads.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
	ActionShip    Action = "ship"
	ActionDeliver Action = "deliver"
)

// transitionSources is the allowed source set per action.
var transitionSources = map[Action]map[Status]bool{
	ActionConfirm: {Pending: true},
	ActionCancel:  {Pending: true, Confirmed: true},
	ActionShip:    {Confirmed: true},
	ActionDeliver: {Shipped: true},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Used when reconstructing orders from external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as stored or supplied externally.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Allows reports whether the given action may be performed from this status.
func (s Status) Allows(action Action) bool {
	return transitionSources[action][s]
}
