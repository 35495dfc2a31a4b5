package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/client"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/usecase/shared"
)

type clientRepository struct {
	db db.DBTX
}

func NewClientRepository(dbtx db.DBTX) shared.ClientRepository {
	return &clientRepository{db: dbtx}
}

// Create persists a new client. The email/phone unique constraints are the
// authoritative duplicate check; a pre-read in the usecase only improves the
// error message and can always lose a race to a concurrent registration.
func (r *clientRepository) Create(ctx context.Context, c *client.Client) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO clients (name, email, phone, credential_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING client_id`,
		c.Name().Value(), c.Email().Value(), c.Phone().Value(), c.CredentialHash(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "email or phone already registered", err)
		}
		return 0, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert client", err)
	}
	return id, nil
}
