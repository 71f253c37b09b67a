package handler

import (
	"net/http"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"

	"github.com/gin-gonic/gin"
)

// SafetyHandler serves safety scoring and anomaly detection
type SafetyHandler struct {
	service service.SafetyService
}

// NewSafetyHandler creates a new SafetyHandler
func NewSafetyHandler(s service.SafetyService) *SafetyHandler {
	return &SafetyHandler{service: s}
}

func (h *SafetyHandler) SafetyScore(c *gin.Context) {
	var req model.SafetyFeatures
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.Score(c.Request.Context(), req))
}

func (h *SafetyHandler) DetectAnomaly(c *gin.Context) {
	var req model.SafetyFeatures
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.DetectAnomaly(c.Request.Context(), req))
}

// RegisterSafetyRoutes registers safety scoring routes
func (h *SafetyHandler) RegisterSafetyRoutes(rg *gin.RouterGroup) {
	rg.POST("/safety-score", h.SafetyScore)
	rg.POST("/detect-anomaly", h.DetectAnomaly)
}
