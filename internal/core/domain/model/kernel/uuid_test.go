package kernel_test

import (
	"encoding/json"
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("generates valid UUIDs", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil, id.Bytes())
	})

	t.Run("generates distinct UUIDs", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_JSON(t *testing.T) {
	t.Run("round-trips as canonical string", func(t *testing.T) {
		original := kernel.NewUUID()

		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.Equal(t, `"`+original.String()+`"`, string(data))

		var restored kernel.UUID
		require.NoError(t, json.Unmarshal(data, &restored))
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, json.Unmarshal([]byte(`"not-a-uuid"`), &id))
	})
}

func TestUUID_IsComparable(t *testing.T) {
	t.Run("usable as map key", func(t *testing.T) {
		id := kernel.NewUUID()
		m := map[kernel.UUID]string{id: "v"}

		raw := id.Bytes()
		same, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)

		assert.Equal(t, "v", m[same])
	})
}
