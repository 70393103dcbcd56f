package statustracker_test

import (
	"testing"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("creates record with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

		r, err := statustracker.NewRecord(id, orderID, order.Created, at)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Created, r.Status())
		assert.Equal(t, at, r.RecordedAt())
	})

	t.Run("truncates timestamp to whole seconds", func(t *testing.T) {
		at := time.Date(2025, 3, 1, 9, 0, 0, 123456789, time.UTC)

		r, err := statustracker.NewRecord(kernel.NewUUID(), kernel.NewUUID(), order.InProgress, at)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), r.RecordedAt())
	})

	t.Run("accepts absent timestamp", func(t *testing.T) {
		r, err := statustracker.NewRecord(kernel.NewUUID(), kernel.NewUUID(), order.Created, time.Time{})

		require.NoError(t, err)
		assert.True(t, r.RecordedAt().IsZero())
	})

	t.Run("rejects Unknown status", func(t *testing.T) {
		_, err := statustracker.NewRecord(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		var zero kernel.UUID

		_, err := statustracker.NewRecord(zero, kernel.NewUUID(), order.Created, time.Now())
		require.Error(t, err)

		_, err = statustracker.NewRecord(kernel.NewUUID(), zero, order.Created, time.Now())
		require.Error(t, err)
	})
}

func TestRecord_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var r statustracker.Record

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, statustracker.ErrRecordIsNotConstructed, err)
	})
}

func TestRecord_MoreRecent(t *testing.T) {
	mustRecord := func(t *testing.T, status order.Status, at time.Time) *statustracker.Record {
		t.Helper()
		r, err := statustracker.NewRecord(kernel.NewUUID(), kernel.NewUUID(), status, at)
		require.NoError(t, err)
		return r
	}

	t.Run("later timestamp wins", func(t *testing.T) {
		earlier := mustRecord(t, order.Created, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
		later := mustRecord(t, order.InProgress, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

		assert.True(t, later.MoreRecent(earlier))
		assert.False(t, earlier.MoreRecent(later))
	})

	t.Run("absent timestamp sorts last", func(t *testing.T) {
		stamped := mustRecord(t, order.Created, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
		absent := mustRecord(t, order.InProgress, time.Time{})

		assert.True(t, stamped.MoreRecent(absent))
		assert.False(t, absent.MoreRecent(stamped))
	})

	t.Run("equal timestamps break ties deterministically by id", func(t *testing.T) {
		at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		a := mustRecord(t, order.Created, at)
		b := mustRecord(t, order.InProgress, at)

		// Exactly one of the two supersedes the other, consistently.
		assert.NotEqual(t, a.MoreRecent(b), b.MoreRecent(a))
		assert.Equal(t, a.MoreRecent(b), a.MoreRecent(b))
	})

	t.Run("nil comparison is true", func(t *testing.T) {
		r := mustRecord(t, order.Created, time.Now())
		assert.True(t, r.MoreRecent(nil))
	})
}
