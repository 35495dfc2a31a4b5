//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(1), actual.ClientID())
		assert.Equal(t, 1, actual.RoomID())
		assert.Equal(t, booking.StatusBooked, actual.Status())
		assert.Equal(t, booking.PaymentPending, actual.PaymentStatus())
		assert.True(t, actual.IsActive())
	})

	t.Run("zero client rejected", func(t *testing.T) {
		_, err := booking.NewBooking(0, 1, time.Now())
		require.ErrorIs(t, err, booking.ErrMissingClient)
	})

	t.Run("zero room rejected", func(t *testing.T) {
		_, err := booking.NewBooking(1, 0, time.Now())
		require.ErrorIs(t, err, booking.ErrMissingRoom)
	})
}

func TestReconstructBooking(t *testing.T) {
	date := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	b := booking.ReconstructBooking(42, 7, 3, date, booking.StatusBooked, booking.PaymentPaid)

	assert.Equal(t, int64(42), b.ID())
	assert.Equal(t, int64(7), b.ClientID())
	assert.Equal(t, 3, b.RoomID())
	assert.Equal(t, date, b.BookingDate())
	assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
}

func TestStatus(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"Booked", true},
		{"Cancelled", true},
		{"booked", false},
		{"", false},
		{"Unknown", false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			s, err := booking.NewStatus(c.input)
			if c.valid {
				require.NoError(t, err)
				assert.Equal(t, c.input, s.String())
			} else {
				require.ErrorIs(t, err, booking.ErrInvalidStatus)
			}
		})
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"Pending", true},
		{"Paid", true},
		{"paid", false},
		{"", false},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			s, err := booking.NewPaymentStatus(c.input)
			if c.valid {
				require.NoError(t, err)
				assert.Equal(t, c.input, s.String())
			} else {
				require.ErrorIs(t, err, booking.ErrInvalidPaymentStatus)
			}
		})
	}
}
