package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyStoredRole, string(claims.StoredRole))
		c.Set(constants.ContextKeyRequestedRole, string(claims.RequestedRole))

		c.Next()
	}
}

// ActorFromContext rebuilds the acting identity the middleware stored on
// the request. The second return is false when the request never passed
// through RequireAuth.
func ActorFromContext(c *gin.Context) (authorization.Actor, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return authorization.Actor{}, false
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return authorization.Actor{}, false
	}

	stored := authorization.Role(c.GetString(constants.ContextKeyStoredRole))
	if !stored.IsValid() {
		return authorization.Actor{}, false
	}
	requested := authorization.Role(c.GetString(constants.ContextKeyRequestedRole))

	return authorization.NewActor(id, stored, requested), true
}
