package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands  commands.AuthCommands
	clientQueries queries.ClientQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, clientQueries queries.ClientQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:  authCommands,
		clientQueries: clientQueries,
	}
}

// @Summary Register client
// @Description Register a new client account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	clientID, err := h.authCommands.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		case errors.Is(err, commands.ErrDuplicateIdentity):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email or phone already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{ClientID: clientID})
}

// @Summary Client login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClientNotFound),
			errors.Is(err, commands.ErrInvalidCredentials):
			// Same response either way so the endpoint does not leak
			// which emails exist.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Get current client
// @Description Get current authenticated client information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ClientResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Client not authenticated",
		})
		return
	}

	view, err := h.clientQueries.GetCurrent(c.Request.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Client not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}
