package statustracker

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// Record is one immutable, timestamped assertion: "this order was in this
// status at this time." Records are only ever appended, never updated; a
// newer record for the same order supersedes older ones when deriving the
// current status.
type Record struct {
	// id is the unique identifier for the record
	id kernel.UUID

	// orderID references the order the record belongs to
	orderID kernel.UUID

	// status is the asserted lifecycle status
	status order.Status

	// recordedAt is when the status was asserted; zero means absent
	recordedAt time.Time

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewRecord creates a new Record with validation. A zero recordedAt is
// accepted: such records sort last when deriving the current status.
func NewRecord(id, orderID kernel.UUID, status order.Status, recordedAt time.Time) (*Record, error) {
	r := &Record{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	r.recordedAt = recordedAt.Truncate(time.Second)
	return r, nil
}

// RestoreRecord reconstructs a Record from persistence, applying the same
// validation as NewRecord.
func RestoreRecord(id, orderID kernel.UUID, status order.Status, recordedAt time.Time) (*Record, error) {
	return NewRecord(id, orderID, status, recordedAt)
}

// Validate ensures the Record was constructed through NewRecord or
// RestoreRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order the record belongs to.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Status returns the asserted status.
func (r *Record) Status() order.Status {
	return r.status
}

// RecordedAt returns when the status was asserted. The zero time means the
// timestamp is absent.
func (r *Record) RecordedAt() time.Time {
	return r.recordedAt
}

// MoreRecent reports whether r supersedes other when deriving an order's
// current status. Ordering is by recordedAt with absent (zero) timestamps
// sorting last; equal timestamps are broken deterministically by record id.
//
// Two records should not share an order id and timestamp under correct
// usage, so the id tie-break only matters for duplicate relay deliveries.
func (r *Record) MoreRecent(other *Record) bool {
	if other == nil {
		return true
	}

	rAbsent, oAbsent := r.recordedAt.IsZero(), other.recordedAt.IsZero()
	switch {
	case rAbsent && oAbsent:
		return r.id.String() > other.id.String()
	case rAbsent:
		return false
	case oAbsent:
		return true
	}

	if r.recordedAt.Equal(other.recordedAt) {
		return r.id.String() > other.id.String()
	}
	return r.recordedAt.After(other.recordedAt)
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Record) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("record status", err)
	}
	r.status = status
	return nil
}
