package handler

import (
	"errors"
	"net/http"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the caller's profile and itineraries
type ProfileHandler struct {
	service  service.ProfileService
	reporter *telemetry.Reporter
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(s service.ProfileService, reporter *telemetry.Reporter) *ProfileHandler {
	return &ProfileHandler{service: s, reporter: reporter}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.reporter.CaptureException(err)
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      profile.User,
		"itinerary": profile.Itinerary,
	})
}

func (h *ProfileHandler) CreateItinerary(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	itinerary, err := h.service.CreateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		h.reporter.CaptureException(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create itinerary"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"itinerary": itinerary,
	})
}

// RegisterProfileRoutes registers profile routes, all protected
func (h *ProfileHandler) RegisterProfileRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/profile", authMW, h.GetProfile)
	rg.POST("/itinerary", authMW, h.CreateItinerary)
}
