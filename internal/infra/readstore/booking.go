package readstore

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSelect = `
	SELECT b.booking_id, b.client_id, c.name, b.room_id, r.room_type,
	       b.booking_date, b.status, b.payment_status
	FROM bookings b
	JOIN clients c ON c.client_id = b.client_id
	JOIN rooms r ON r.room_id = b.room_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, bookingViewSelect+` WHERE b.booking_id = $1`, id).Scan(
		&v.ID, &v.ClientID, &v.ClientName, &v.RoomID, &v.RoomType,
		&v.BookingDate, &v.Status, &v.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find booking by ID", err)
	}
	return &v, nil
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+` ORDER BY b.booking_id`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list bookings", err)
	}
	return scanBookings(rows)
}

func (r *BookingReadStore) FindByClientID(ctx context.Context, clientID int64) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingViewSelect+` WHERE b.client_id = $1 ORDER BY b.booking_id`, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list bookings by client", err)
	}
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.ClientID, &v.ClientName, &v.RoomID, &v.RoomType,
			&v.BookingDate, &v.Status, &v.PaymentStatus,
		); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan booking row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate booking rows", err)
	}
	return result, nil
}
