package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shobhanashankar/TourSafe/internal/config"
	"github.com/Shobhanashankar/TourSafe/internal/handler"
	"github.com/Shobhanashankar/TourSafe/internal/logger"
	"github.com/Shobhanashankar/TourSafe/internal/middleware"
	"github.com/Shobhanashankar/TourSafe/internal/notify"
	"github.com/Shobhanashankar/TourSafe/internal/realtime"
	"github.com/Shobhanashankar/TourSafe/internal/repository"
	"github.com/Shobhanashankar/TourSafe/internal/service"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"
	"github.com/Shobhanashankar/TourSafe/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const sessionTTL = 7 * 24 * time.Hour

func main() {
	log := logger.New()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	// --- Telemetry ---
	reporter, err := telemetry.Init(cfg.SentryDSN)
	if err != nil {
		log.Error("failed to initialize telemetry", "err", err)
		os.Exit(1)
	}
	defer reporter.Flush()

	// --- Document Store ---
	client, err := config.ConnectMongo(cfg, log)
	if err != nil {
		log.Error("failed to connect to document store", "err", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error("failed to disconnect from document store", "err", err)
		}
	}()

	db := client.Database(cfg.DBName)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = config.EnsureIndexes(ctx, db)
		cancel()
		if err != nil {
			log.Error("failed to ensure indexes", "err", err)
			os.Exit(1)
		}
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, sessionTTL)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	penaltyRepo := repository.NewPenaltyRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)

	// --- Real-time Hub ---
	hub := realtime.NewHub(log)
	go hub.Run()

	// --- Notification Channels ---
	var channels []notify.Channel
	if cfg.SMSConfigured() {
		channels = append(channels, notify.NewSMSChannel(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioPhone))
	} else {
		log.Info("twilio credentials not set, SMS channel disabled")
		channels = append(channels, notify.Disabled("sms"))
	}
	if cfg.PushConfigured() {
		pushChannel, err := notify.NewPushChannel(context.Background(), cfg.FCMKey)
		if err != nil {
			log.Error("failed to initialize push channel, disabling", "err", err)
			reporter.CaptureException(err)
			channels = append(channels, notify.Disabled("push"))
		} else {
			channels = append(channels, pushChannel)
		}
	} else {
		log.Info("FCM credentials not set, push channel disabled")
		channels = append(channels, notify.Disabled("push"))
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	alertService := service.NewAlertService(alertRepo, userRepo, hub, channels, reporter, log)
	penaltyService := service.NewPenaltyService(penaltyRepo)
	profileService := service.NewProfileService(userRepo, itineraryRepo)
	emergencyService := service.NewEmergencyService()
	safetyService := service.NewSafetyService(cfg.MLBaseURL, log)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, reporter)
	alertHandler := handler.NewAlertHandler(alertService, reporter)
	penaltyHandler := handler.NewPenaltyHandler(penaltyService, reporter)
	profileHandler := handler.NewProfileHandler(profileService, reporter)
	emergencyHandler := handler.NewEmergencyHandler(emergencyService)
	safetyHandler := handler.NewSafetyHandler(safetyService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil, reporter)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	alertHandler.RegisterAlertRoutes(apiGroup, jwtAuthMW)
	penaltyHandler.RegisterPenaltyRoutes(apiGroup, jwtAuthMW)
	profileHandler.RegisterProfileRoutes(apiGroup, jwtAuthMW)
	emergencyHandler.RegisterEmergencyRoutes(apiGroup)
	safetyHandler.RegisterSafetyRoutes(apiGroup)

	// Real-time channel
	router.GET("/ws", realtime.ServeWS(hub, log))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "TourSafe API is running")
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", "err", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "err", err)
	}

	log.Info("server exiting")
}
