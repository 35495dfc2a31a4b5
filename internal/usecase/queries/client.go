package queries

import (
	"context"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
)

var ErrClientNotFound = errs.New("client not found")

type ClientQueries interface {
	GetCurrent(ctx context.Context, clientID int64) (*ClientView, error)
	ListAll(ctx context.Context) ([]*ClientView, error)
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id int64) (*ClientView, error)
	FindAll(ctx context.Context) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) GetCurrent(ctx context.Context, clientID int64) (*ClientView, error) {
	view, err := q.store.FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Wrap(err, "failed to find client")
	}
	return view, nil
}

func (q *clientQueriesImpl) ListAll(ctx context.Context) ([]*ClientView, error) {
	return q.store.FindAll(ctx)
}
