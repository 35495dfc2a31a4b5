package api

import (
	"net/http"

	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientQueries queries.ClientQueries
}

func NewClientHandler(clientQueries queries.ClientQueries) *ClientHandler {
	return &ClientHandler{
		clientQueries: clientQueries,
	}
}

// @Summary List clients
// @Description List all registered clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientResponse
// @Failure 401 {object} map[string]string
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	views, err := h.clientQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientViews(views))
}
