package readstore

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomColumns = `room_id, room_type, price, bed_count, level, availability, category, description`

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY room_id`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list rooms", err)
	}
	return scanRooms(rows)
}

func (r *RoomReadStore) FindAvailable(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE availability = true ORDER BY room_id`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list available rooms", err)
	}
	return scanRooms(rows)
}

func scanRooms(rows pgx.Rows) ([]*queries.RoomView, error) {
	defer rows.Close()

	result := make([]*queries.RoomView, 0)
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(&v.ID, &v.RoomType, &v.Price, &v.BedCount, &v.Level, &v.Available, &v.Category, &v.Description); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan room row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate room rows", err)
	}
	return result, nil
}
