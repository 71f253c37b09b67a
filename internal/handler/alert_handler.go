package handler

import (
	"net/http"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// AlertHandler handles panic alerts and live location tracking
type AlertHandler struct {
	service  service.AlertService
	reporter *telemetry.Reporter
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(s service.AlertService, reporter *telemetry.Reporter) *AlertHandler {
	return &AlertHandler{service: s, reporter: reporter}
}

func (h *AlertHandler) PanicAlert(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.PanicAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := h.service.TriggerPanic(c.Request.Context(), userID, req); err != nil {
		h.reporter.CaptureException(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to record panic alert"})
		return
	}

	// Fixed acknowledgment regardless of which notification channels ran
	c.JSON(http.StatusOK, gin.H{
		"color": "red",
		"tip":   "Help is on the way!",
	})
}

func (h *AlertHandler) TrackLocation(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.TrackLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.service.TrackLocation(userID, req)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterAlertRoutes registers alert routes, all protected
func (h *AlertHandler) RegisterAlertRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/panic-alert", authMW, h.PanicAlert)
	rg.POST("/track-location", authMW, h.TrackLocation)
}
