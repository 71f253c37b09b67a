package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Shobhanashankar/TourSafe/internal/telemetry"
	"github.com/Shobhanashankar/TourSafe/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthUserKey is the gin context key carrying the authenticated user id
const AuthUserKey = "authUser"

// JWTAuthMiddleware verifies the bearer token on protected routes and
// attaches the caller's identity to the request context. Verification is
// stateless; failures are reported to the telemetry collector.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil, reporter *telemetry.Reporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reporter.CaptureMessage("auth: missing authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			reporter.CaptureMessage("auth: malformed authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			reporter.CaptureException(fmt.Errorf("auth: token rejected: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthUserKey, claims.UserID)

		c.Next()
	}
}
