package handler

import (
	"net/http"
	"strconv"

	"github.com/Shobhanashankar/TourSafe/internal/service"

	"github.com/gin-gonic/gin"
)

// EmergencyHandler serves the emergency-numbers lookup, unauthenticated
type EmergencyHandler struct {
	service service.EmergencyService
}

// NewEmergencyHandler creates a new EmergencyHandler
func NewEmergencyHandler(s service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{service: s}
}

func (h *EmergencyHandler) GetEmergencyNumbers(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lat query parameter"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lng query parameter"})
		return
	}

	c.JSON(http.StatusOK, h.service.Nearby(lat, lng))
}

// RegisterEmergencyRoutes registers the emergency-numbers route
func (h *EmergencyHandler) RegisterEmergencyRoutes(rg *gin.RouterGroup) {
	rg.GET("/emergency-numbers", h.GetEmergencyNumbers)
}
