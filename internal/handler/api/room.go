package api

import (
	"net/http"

	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List rooms
// @Description List all rooms, optionally filtered to available ones
// @Tags rooms
// @Produce json
// @Param available query bool false "Only rooms currently available"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var (
		views []*queries.RoomView
		err   error
	)
	if c.Query("available") == "true" {
		views, err = h.roomQueries.ListAvailable(c.Request.Context())
	} else {
		views, err = h.roomQueries.ListAll(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}
