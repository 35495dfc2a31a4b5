package components

import (
	"hotel-booking-engine/internal/handler"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewClientHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
