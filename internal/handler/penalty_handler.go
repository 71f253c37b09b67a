package handler

import (
	"net/http"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// PenaltyHandler handles the penalty points ledger
type PenaltyHandler struct {
	service  service.PenaltyService
	reporter *telemetry.Reporter
}

// NewPenaltyHandler creates a new PenaltyHandler
func NewPenaltyHandler(s service.PenaltyService, reporter *telemetry.Reporter) *PenaltyHandler {
	return &PenaltyHandler{service: s, reporter: reporter}
}

func (h *PenaltyHandler) AddPenalty(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.AddPenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	penalty, err := h.service.AddPenalty(c.Request.Context(), userID, req)
	if err != nil {
		h.reporter.CaptureException(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to add penalty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"penalty": penalty,
	})
}

func (h *PenaltyHandler) ListPenalties(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	penalties, err := h.service.ListPenalties(c.Request.Context(), userID)
	if err != nil {
		h.reporter.CaptureException(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to list penalties"})
		return
	}

	c.JSON(http.StatusOK, penalties)
}

// RegisterPenaltyRoutes registers penalty routes, all protected
func (h *PenaltyHandler) RegisterPenaltyRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	penaltyGroup := rg.Group("/penalty")
	penaltyGroup.Use(authMW)
	{
		penaltyGroup.POST("/add-penalty", h.AddPenalty)
		penaltyGroup.GET("/penalties", h.ListPenalties)
	}
}
