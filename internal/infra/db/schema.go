package db

import (
	"context"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The partial unique index on bookings is the storage-level backstop for the
// availability invariant: at most one active booking may reference a room,
// regardless of what the engine believed when it read the availability flag.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS rooms (
    room_id      integer PRIMARY KEY,
    room_type    text NOT NULL,
    price        numeric(10,2) NOT NULL CHECK (price >= 0),
    bed_count    integer NOT NULL,
    level        integer NOT NULL,
    availability boolean NOT NULL,
    category     text NOT NULL,
    description  text NOT NULL
);

CREATE TABLE IF NOT EXISTS clients (
    client_id       bigserial PRIMARY KEY,
    name            text NOT NULL,
    email           text NOT NULL UNIQUE,
    phone           text NOT NULL UNIQUE,
    credential_hash text NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
    booking_id     bigserial PRIMARY KEY,
    client_id      bigint NOT NULL REFERENCES clients (client_id),
    room_id        integer NOT NULL REFERENCES rooms (room_id),
    booking_date   timestamptz NOT NULL,
    status         text NOT NULL,
    payment_status text NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS bookings_room_active_uq
    ON bookings (room_id) WHERE status = 'Booked';
`

type seedRoom struct {
	id          int
	roomType    string
	price       string
	bedCount    int
	level       int
	category    string
	description string
}

// Initial provisioning: 16 rooms across four categories, all available.
var seedRooms = []seedRoom{
	{1, "Standard", "50.00", 1, 1, "Standard Room", "Basic room with 1 bed"},
	{2, "Standard", "50.00", 1, 1, "Standard Room", "Basic room with 1 bed"},
	{3, "Standard", "50.00", 1, 1, "Standard Room", "Basic room with 1 bed"},
	{4, "Standard", "50.00", 1, 1, "Standard Room", "Basic room with 1 bed"},
	{5, "Standard", "50.00", 1, 1, "Standard Room", "Basic room with 1 bed"},
	{6, "2-Bed", "70.00", 2, 1, "2-Bed Room", "Room with 2 beds"},
	{7, "2-Bed", "70.00", 2, 1, "2-Bed Room", "Room with 2 beds"},
	{8, "2-Bed", "70.00", 2, 1, "2-Bed Room", "Room with 2 beds"},
	{9, "2-Bed", "70.00", 2, 1, "2-Bed Room", "Room with 2 beds"},
	{10, "2-Bed", "70.00", 2, 1, "2-Bed Room", "Room with 2 beds"},
	{11, "Modern", "110.00", 2, 2, "Modern Room", "Room with 2 beds, modern amenities"},
	{12, "Modern", "110.00", 2, 2, "Modern Room", "Room with 2 beds, modern amenities"},
	{13, "Modern", "110.00", 2, 2, "Modern Room", "Room with 2 beds, modern amenities"},
	{14, "Modern", "110.00", 2, 2, "Modern Room", "Room with 2 beds, modern amenities"},
	{15, "Luxury", "150.00", 2, 2, "Luxury Room", "Luxurious room with 2 beds and extra features"},
	{16, "Luxury", "150.00", 2, 2, "Luxury Room", "Luxurious room with 2 beds and extra features"},
}

// EnsureSchema applies the DDL and, when the rooms table is empty, inserts
// the seed inventory. Safe to call on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return errs.Wrap(err, "failed to count rooms")
	}
	if count > 0 {
		return nil
	}

	for _, r := range seedRooms {
		_, err := pool.Exec(ctx,
			`INSERT INTO rooms (room_id, room_type, price, bed_count, level, availability, category, description)
			 VALUES ($1, $2, $3, $4, $5, true, $6, $7)`,
			r.id, r.roomType, r.price, r.bedCount, r.level, r.category, r.description,
		)
		if err != nil {
			return errs.Wrap(err, "failed to seed rooms")
		}
	}

	return nil
}
