// Package statustracker contains the Record value object: one immutable
// entry in an order's append-only status history.
//
// The history is the source of truth for order status. A record is never
// updated or deleted on a status change, only superseded by a newer record
// for the same order; the current status of an order is the record with the
// maximum timestamp among all records referencing it. An order with no
// records has no current status, which is distinct from Deleted.
package statustracker
