package queries

import (
	"context"
)

type RoomQueries interface {
	// ListAvailable is the availability ledger: rooms whose flag is true.
	ListAvailable(ctx context.Context) ([]*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindAll(ctx context.Context) ([]*RoomView, error)
	FindAvailable(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAvailable(ctx)
}

func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	return q.store.FindAll(ctx)
}
