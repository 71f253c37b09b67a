package handler

import (
	"errors"
	"net/http"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and device registration
type AuthHandler struct {
	service  service.AuthService
	reporter *telemetry.Reporter
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, reporter *telemetry.Reporter) *AuthHandler {
	return &AuthHandler{service: s, reporter: reporter}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.reporter.CaptureException(err)
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.reporter.CaptureException(err)
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) RegisterDevice(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.RegisterDevice(c.Request.Context(), userID, req.Token); err != nil {
		h.reporter.CaptureException(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterAuthRoutes registers account and session routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	userGroup := rg.Group("/users")
	{
		userGroup.POST("/signup", h.Signup)
		userGroup.POST("/login", h.Login)
	}
	rg.POST("/register-device", authMW, h.RegisterDevice)
}
