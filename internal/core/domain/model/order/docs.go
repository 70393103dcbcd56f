// Package order contains the Order aggregate and the Status lifecycle
// enumeration.
//
// An Order links a user to a product and carries a creation timestamp. Its
// status is deliberately not a field on the aggregate: every status change is
// an immutable record in the status history (see the statustracker package),
// and "current status" is always derived as the most recent record. The
// Status type provides the total successor function that describes the
// typical one-step lifecycle advance.
package order
