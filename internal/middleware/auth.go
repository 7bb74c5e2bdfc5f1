package middleware

import (
	"chainquest_backend/internal/config"
	"chainquest_backend/internal/model"
	"chainquest_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid session token.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches claims when a valid token is present but lets
// anonymous requests through. Progression endpoints run under this.
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// ResolveUserID picks the progression identity for a request: authenticated
// token subject first, then an explicit user id from the body or query, and
// finally the shared anonymous record.
func ResolveUserID(c *gin.Context, explicit string) string {
	if claims := util.GetUserFromContext(c); claims != nil && claims.UserID != "" {
		return claims.UserID
	}
	if explicit != "" {
		return explicit
	}
	if q := c.Query("user_id"); q != "" {
		return q
	}
	return model.DefaultUserID
}
