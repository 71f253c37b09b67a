package handler

import (
	"errors"

	"github.com/Shobhanashankar/TourSafe/internal/middleware"

	"github.com/gin-gonic/gin"
)

// getAuthUserID extracts the authenticated user id set by the JWT middleware
func getAuthUserID(c *gin.Context) (string, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return userID, nil
}
