package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"
)

var (
	ErrRoomNotFound    = errs.New("room not found")
	ErrRoomUnavailable = errs.New("room is not available")
	ErrBookingNotFound = errs.New("booking not found")
)

type BookingReads interface {
	FindByID(ctx context.Context, bookingID int64) (*queries.BookingView, error)
}

type BookingCommands interface {
	Reserve(ctx context.Context, clientID int64, roomID int) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID int64) error
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	bookingReads BookingReads
	clk          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingReads BookingReads, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		bookingReads: bookingReads,
		clk:          clk,
	}
}

// Reserve books a room for a client. The whole check-and-write runs inside
// one transaction with the room row locked, so two concurrent reserves for
// the same room serialize and the slower one observes availability=false.
// The partial unique index on active bookings backs the lock up: a conflict
// insert surfaces as KindConflict and maps to the same unavailable error.
func (b *bookingCommandsImpl) Reserve(ctx context.Context, clientID int64, roomID int) (*queries.BookingView, error) {
	var bookingID int64
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Rooms().LockByID(ctx, roomID)
		if err != nil {
			return err
		}
		if !room.Available {
			return ErrRoomUnavailable
		}

		entity, err := booking.NewBooking(clientID, roomID, b.clk.Now())
		if err != nil {
			return err
		}
		id, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			return err
		}
		bookingID = id

		return tx.Rooms().SetAvailability(ctx, roomID, false)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrRoomUnavailable):
			return nil, ErrRoomUnavailable
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrRoomUnavailable
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRoomNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrClientNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	slog.Info("room reserved", "booking_id", bookingID, "room_id", roomID, "client_id", clientID)

	view, err := b.bookingReads.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// Cancel removes a booking and returns its room to the available pool.
// The booking row is deleted outright rather than flipped to Cancelled,
// so a cancelled reservation leaves no trace in listings.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, bookingID int64) error {
	var roomID int
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		state, err := tx.Bookings().LockByID(ctx, bookingID)
		if err != nil {
			return err
		}
		roomID = state.RoomID

		if err := tx.Bookings().Delete(ctx, bookingID); err != nil {
			return err
		}
		return tx.Rooms().SetAvailability(ctx, state.RoomID, true)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking cancelled", "booking_id", bookingID, "room_id", roomID)
	return nil
}
