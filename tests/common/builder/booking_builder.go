//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"
)

type BookingBuilder struct {
	ClientID    int64
	RoomID      int
	BookingDate time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ClientID:    1,
		RoomID:      1,
		BookingDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.ClientID, b.RoomID, b.BookingDate)
}

func (b *BookingBuilder) BuildState(id int64) *shared.BookingState {
	return &shared.BookingState{
		ID:          id,
		ClientID:    b.ClientID,
		RoomID:      b.RoomID,
		BookingDate: b.BookingDate,
		Status:      string(booking.StatusBooked),
	}
}

func (b *BookingBuilder) BuildView(id int64) *queries.BookingView {
	return &queries.BookingView{
		ID:            id,
		ClientID:      b.ClientID,
		ClientName:    "Alice Smith",
		RoomID:        b.RoomID,
		RoomType:      "Standard",
		BookingDate:   b.BookingDate,
		Status:        string(booking.StatusBooked),
		PaymentStatus: string(booking.PaymentPending),
	}
}
