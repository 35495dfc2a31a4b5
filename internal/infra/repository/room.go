package repository

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type roomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) shared.RoomRepository {
	return &roomRepository{db: dbtx}
}

// LockByID reads the availability flag under FOR UPDATE so that two
// concurrent reserve transactions on the same room serialize here: the
// second blocks until the first commits, then observes its write.
func (r *roomRepository) LockByID(ctx context.Context, roomID int) (*shared.RoomState, error) {
	var state shared.RoomState
	err := r.db.QueryRow(ctx,
		`SELECT room_id, availability FROM rooms WHERE room_id = $1 FOR UPDATE`,
		roomID,
	).Scan(&state.ID, &state.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to lock room row", err)
	}
	return &state, nil
}

func (r *roomRepository) SetAvailability(ctx context.Context, roomID int, available bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET availability = $2 WHERE room_id = $1`,
		roomID, available,
	)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update room availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "room not found", nil)
	}
	return nil
}
