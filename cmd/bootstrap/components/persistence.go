package components

import (
	"hotel-booking-engine/internal/infra/db"
	"hotel-booking-engine/internal/infra/readstore"
	"hotel-booking-engine/internal/infra/uow"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
	),
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Client
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
			fx.As(new(commands.ClientReads)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.BookingReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
