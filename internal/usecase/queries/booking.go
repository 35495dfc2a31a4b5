package queries

import (
	"context"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByClient(ctx context.Context, clientID int64) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingView, error)
	FindByClientID(ctx context.Context, clientID int64) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	return q.store.FindAll(ctx)
}

func (q *bookingQueriesImpl) ListByClient(ctx context.Context, clientID int64) ([]*BookingView, error) {
	return q.store.FindByClientID(ctx, clientID)
}
