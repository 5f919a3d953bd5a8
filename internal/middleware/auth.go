package middleware

import (
	"net/http"
	"strings"

	"github.com/VertingsXin/ai-mock-interview/internal/dto"
	"github.com/VertingsXin/ai-mock-interview/internal/service"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key the JWT middleware stores the caller id under.
const UserIDKey = "user_id"

func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid authorization header format"})
			return
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CallerID reads the authenticated user id set by JWTAuth.
func CallerID(c *gin.Context) (uint, bool) {
	val, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
