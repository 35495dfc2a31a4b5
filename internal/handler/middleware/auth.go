package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-booking-engine/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const ctxClientIDKey = "client_id"

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxClientIDKey, claims.ClientID)
		c.Next()
	}
}

func GetClientID(c *gin.Context) (int64, bool) {
	clientID, exists := c.Get(ctxClientIDKey)
	if !exists {
		return 0, false
	}

	id, ok := clientID.(int64)
	return id, ok
}
