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

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(dbtx db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: dbtx}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id int64) (*queries.ClientView, error) {
	var v queries.ClientView
	err := r.db.QueryRow(ctx,
		`SELECT client_id, name, email, phone FROM clients WHERE client_id = $1`,
		id,
	).Scan(&v.ID, &v.Name, &v.Email, &v.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "client not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find client by ID", err)
	}
	return &v, nil
}

// FindByEmail returns the client view together with the stored credential
// hash so the auth flow can verify the password without a second read.
func (r *ClientReadStore) FindByEmail(ctx context.Context, email string) (*queries.ClientView, string, error) {
	var v queries.ClientView
	var hash string
	err := r.db.QueryRow(ctx,
		`SELECT client_id, name, email, phone, credential_hash FROM clients WHERE email = $1`,
		email,
	).Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "client not found", err)
		}
		return nil, "", infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find client by email", err)
	}
	return &v, hash, nil
}

func (r *ClientReadStore) FindAll(ctx context.Context) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT client_id, name, email, phone FROM clients ORDER BY client_id`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list clients", err)
	}
	defer rows.Close()

	result := make([]*queries.ClientView, 0)
	for rows.Next() {
		var v queries.ClientView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan client row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to iterate client rows", err)
	}
	return result, nil
}
