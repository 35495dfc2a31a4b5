//go:build unit

package room_test

import (
	"testing"

	"hotel-booking-engine/internal/domain/room"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := room.NewRoom(1, "Standard", decimal.NewFromInt(50), 1, 1, true, "quiet", "Ground floor single")
		require.NoError(t, err)

		assert.Equal(t, 1, r.ID())
		assert.Equal(t, "Standard", r.RoomType())
		assert.True(t, r.Price().Equal(decimal.NewFromInt(50)))
		assert.Equal(t, 1, r.BedCount())
		assert.True(t, r.Available())
	})

	t.Run("empty type rejected", func(t *testing.T) {
		_, err := room.NewRoom(1, "  ", decimal.NewFromInt(50), 1, 1, true, "", "")
		require.ErrorIs(t, err, room.ErrEmptyRoomType)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := room.NewRoom(1, "Standard", decimal.NewFromInt(-1), 1, 1, true, "", "")
		require.ErrorIs(t, err, room.ErrNegativePrice)
	})

	t.Run("zero beds rejected", func(t *testing.T) {
		_, err := room.NewRoom(1, "Standard", decimal.NewFromInt(50), 0, 1, true, "", "")
		require.ErrorIs(t, err, room.ErrInvalidBeds)
	})

	t.Run("zero price ok", func(t *testing.T) {
		r, err := room.NewRoom(1, "Standard", decimal.Zero, 1, 1, true, "", "")
		require.NoError(t, err)
		assert.True(t, r.Price().IsZero())
	})
}
