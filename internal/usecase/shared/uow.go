package shared

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/client"
)

// UnitOfWork scopes every mutation to one storage transaction. The store,
// not the calling goroutine, owns mutual exclusion: repositories obtained
// from a Tx hold row locks until the whole function commits or rolls back.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Clients() ClientRepository
}

// RoomState is the minimal view a write transaction needs of a room row.
type RoomState struct {
	ID        int
	Available bool
}

// BookingState mirrors a locked booking row inside a cancel transaction.
type BookingState struct {
	ID          int64
	ClientID    int64
	RoomID      int
	BookingDate time.Time
	Status      string
}

type RoomRepository interface {
	// LockByID acquires an exclusive row lock on the room for the duration
	// of the enclosing transaction.
	LockByID(ctx context.Context, roomID int) (*RoomState, error)
	SetAvailability(ctx context.Context, roomID int, available bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	LockByID(ctx context.Context, bookingID int64) (*BookingState, error)
	Delete(ctx context.Context, bookingID int64) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) (int64, error)
}
