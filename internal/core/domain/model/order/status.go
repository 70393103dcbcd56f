package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents one stage in an order's fixed, totally ordered lifecycle.
//
// The lifecycle advances one step at a time:
//
//	Created ──> InProgress ──> InAWay ──> Delivered ──> Deleted
//
// Unknown (0) is the implicit "no status yet" pre-state: an order whose
// history is empty has no current status, which is distinct from Deleted.
// Status is a value object; it never mutates and carries no side effects.
type Status int

const (
	// Unknown represents the absence of a status. It is both the invalid
	// zero value and the pre-state before the first history record.
	Unknown Status = iota

	// Created is the initial status appended when an order is registered.
	Created

	// InProgress indicates the order is being prepared.
	InProgress

	// InAWay indicates the order has left for delivery.
	InAWay

	// Delivered indicates the order reached its recipient.
	Delivered

	// Deleted is the terminal status. The history store still accepts
	// appends past this point (it is append-only); callers treat such
	// appends as stray redeliveries.
	Deleted
)

// getStatusStrings returns the wire names for all Status values, including
// Unknown for diagnostics.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		InAWay:     "IN_A_WAY",
		Delivered:  "DELIVERED",
		Deleted:    "DELETED",
	}
}

// getValidStatusStrings returns only the statuses that may appear in a
// history record.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "CREATED",
		InProgress: "IN_PROGRESS",
		InAWay:     "IN_A_WAY",
		Delivered:  "DELIVERED",
		Deleted:    "DELETED",
	}
}

// StatusFromString parses a wire name into a Status. An unrecognized name
// returns an errs.ValueIsInvalidError; parsing never panics.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status name", name),
	)
}

// Validate checks that the Status is one of the five lifecycle members.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe on any value, returning "UNKNOWN" for invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the successor of s in the lifecycle order. The successor of
// Unknown (no status yet) is Created. Deleted has no successor; the second
// return value reports whether a successor exists.
//
// Next is total and pure. It describes the typical one-step advance; it is
// not a transition guard (see Record appends in the lifecycle handlers).
func (s Status) Next() (Status, bool) {
	switch s {
	case Unknown:
		return Created, true
	case Created:
		return InProgress, true
	case InProgress:
		return InAWay, true
	case InAWay:
		return Delivered, true
	case Delivered:
		return Deleted, true
	default:
		return Unknown, false
	}
}

// IsSuccessorOf reports whether s is the immediate successor of prev.
// Used by the strict-transition mode of the status-change handler.
func (s Status) IsSuccessorOf(prev Status) bool {
	next, ok := prev.Next()
	return ok && next == s
}
