package repository

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type bookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return &bookingRepository{db: dbtx}
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO bookings (client_id, room_id, booking_date, status, payment_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING booking_id`,
		b.ClientID(), b.RoomID(), b.BookingDate(), b.Status().String(), b.PaymentStatus().String(),
	).Scan(&id)
	if err != nil {
		// The partial unique index on active bookings fires when a second
		// transaction slipped a booking in for the same room.
		if infra.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr(slog.Default(), infra.KindConflict, "room already has an active booking", err)
		}
		if infra.IsForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, "booking references unknown client or room", err)
		}
		return 0, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert booking", err)
	}
	return id, nil
}

func (r *bookingRepository) LockByID(ctx context.Context, bookingID int64) (*shared.BookingState, error) {
	var state shared.BookingState
	err := r.db.QueryRow(ctx,
		`SELECT booking_id, client_id, room_id, booking_date, status
		 FROM bookings WHERE booking_id = $1 FOR UPDATE`,
		bookingID,
	).Scan(&state.ID, &state.ClientID, &state.RoomID, &state.BookingDate, &state.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to lock booking row", err)
	}
	return &state, nil
}

func (r *bookingRepository) Delete(ctx context.Context, bookingID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, bookingID)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil)
	}
	return nil
}
