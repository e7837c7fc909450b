package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/jwt"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/redis"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/response"
)

// JWTAuth extracts and verifies the Bearer access token, rejects
// revoked tokens via the redis blacklist, and injects user identity
// into the context.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, jwtMgr, rdb)
		if !ok {
			response.Unauthorized(c, 10002, "invalid or expired token")
			c.Abort()
			return
		}
		if claims == nil {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// OptionalJWTAuth injects identity when a valid token is present but
// lets anonymous requests through. Endpoints behind it serve the
// public disclosure stage to anonymous viewers.
func OptionalJWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, jwtMgr, rdb)
		if ok && claims != nil {
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("claims", claims)
		}
		c.Next()
	}
}

// parseBearer returns (nil, true) when no header is present,
// (claims, true) on success and (nil, false) on a bad token.
func parseBearer(c *gin.Context, jwtMgr *jwt.Manager, rdb *redis.Client) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtMgr.ParseToken(parts[1])
	if err != nil || claims.TokenType != "access" {
		return nil, false
	}

	if rdb != nil {
		revoked, err := rdb.IsTokenBlacklisted(c.Request.Context(), claims.ID)
		if err == nil && revoked {
			return nil, false
		}
		// a blacklist read error degrades open, same as RateLimit
	}

	return claims, true
}

// RoleAuth rejects callers whose role is not in the allowed set.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "insufficient permissions")
		c.Abort()
	}
}
