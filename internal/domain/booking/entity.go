package booking

import (
	"errors"
	"time"
)

var (
	ErrMissingClient = errors.New("booking requires a client")
	ErrMissingRoom   = errors.New("booking requires a room")
)

// Booking links one client to one room. A row exists only while the booking
// is active; cancellation removes it entirely rather than flipping status.
type Booking struct {
	id            int64
	clientID      int64
	roomID        int
	bookingDate   time.Time
	status        Status
	paymentStatus PaymentStatus
}

// NewBooking builds the active booking created by a reserve transaction.
// Payment collection is out of scope, so payment status always starts Pending.
func NewBooking(clientID int64, roomID int, bookingDate time.Time) (*Booking, error) {
	if clientID <= 0 {
		return nil, ErrMissingClient
	}
	if roomID <= 0 {
		return nil, ErrMissingRoom
	}

	return &Booking{
		clientID:      clientID,
		roomID:        roomID,
		bookingDate:   bookingDate,
		status:        StatusBooked,
		paymentStatus: PaymentPending,
	}, nil
}

func ReconstructBooking(id, clientID int64, roomID int, bookingDate time.Time, status Status, paymentStatus PaymentStatus) *Booking {
	return &Booking{
		id:            id,
		clientID:      clientID,
		roomID:        roomID,
		bookingDate:   bookingDate,
		status:        status,
		paymentStatus: paymentStatus,
	}
}

func (b *Booking) ID() int64                    { return b.id }
func (b *Booking) ClientID() int64              { return b.clientID }
func (b *Booking) RoomID() int                  { return b.roomID }
func (b *Booking) BookingDate() time.Time       { return b.bookingDate }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }

func (b *Booking) IsActive() bool {
	return b.status == StatusBooked
}
