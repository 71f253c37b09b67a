package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/notify"
	"github.com/Shobhanashankar/TourSafe/internal/repository"
	"github.com/Shobhanashankar/TourSafe/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// EventPanic and EventLocationUpdate are the outbound real-time channels
	EventPanic          = "panic"
	EventLocationUpdate = "location-update"

	notifyTimeout = 5 * time.Second
)

// Broadcaster pushes an event to all connected real-time subscribers
type Broadcaster interface {
	Broadcast(event string, data interface{})
}

// AlertService handles the panic-alert fan-out and live location tracking
type AlertService interface {
	TriggerPanic(ctx context.Context, userID string, req model.PanicAlertRequest) (*model.Alert, error)
	TrackLocation(userID string, req model.TrackLocationRequest)
}

type alertService struct {
	alertRepo   repository.AlertRepository
	userRepo    repository.UserRepository
	broadcaster Broadcaster
	channels    []notify.Channel
	reporter    *telemetry.Reporter
	logger      *slog.Logger
}

// NewAlertService creates a new AlertService
func NewAlertService(
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
	broadcaster Broadcaster,
	channels []notify.Channel,
	reporter *telemetry.Reporter,
	logger *slog.Logger,
) AlertService {
	return &alertService{
		alertRepo:   alertRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		channels:    channels,
		reporter:    reporter,
		logger:      logger,
	}
}

// TriggerPanic persists the alert, broadcasts it, and best-effort relays it
// through every notification channel. Only the persistence step can fail the
// request; channel outcomes are logged and reported, never propagated.
func (s *alertService) TriggerPanic(ctx context.Context, userID string, req model.PanicAlertRequest) (*model.Alert, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	// The owning user id always comes from the authenticated session; any
	// ownership field in the body is ignored.
	alert := &model.Alert{
		UserID:    uid,
		Location:  req.Location,
		Type:      req.Type,
		CreatedAt: time.Now(),
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to persist alert: %w", err)
	}

	// Best-effort real-time notice of the raw payload; no acknowledgment,
	// disconnected or slow subscribers may miss it.
	s.broadcaster.Broadcast(EventPanic, req)

	s.fanOut(ctx, alert)

	return alert, nil
}

// fanOut relays the alert through the configured channels, independently
// fault-tolerant: one channel failing never blocks another.
func (s *alertService) fanOut(ctx context.Context, alert *model.Alert) {
	user, err := s.userRepo.FindByID(ctx, alert.UserID)
	if err != nil {
		s.logger.Error("failed to load user for alert fan-out", "alert", alert.ID.Hex(), "err", err)
		s.reporter.CaptureException(err)
		return
	}
	if user == nil {
		s.logger.Error("alert owner not found, skipping notification fan-out", "alert", alert.ID.Hex())
		return
	}

	ev := notify.Event{
		UserID:      alert.UserID.Hex(),
		Lat:         alert.Location.Lat,
		Lng:         alert.Location.Lng,
		AlertType:   alert.Type,
		Contacts:    user.EmergencyContacts,
		DeviceToken: user.DeviceToken,
	}

	for _, ch := range s.channels {
		chCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
		status, err := ch.Notify(chCtx, ev)
		cancel()

		switch status {
		case notify.StatusSent:
			s.logger.Info("alert notification sent", "channel", ch.Name(), "alert", alert.ID.Hex())
		case notify.StatusSkipped:
			s.logger.Info("alert notification skipped", "channel", ch.Name(), "alert", alert.ID.Hex())
		case notify.StatusFailed:
			s.logger.Error("alert notification failed", "channel", ch.Name(), "alert", alert.ID.Hex(), "err", err)
			s.reporter.CaptureException(err)
		}
	}
}

// TrackLocation re-broadcasts the caller's submitted location to all
// real-time subscribers. Nothing is persisted.
func (s *alertService) TrackLocation(userID string, req model.TrackLocationRequest) {
	s.broadcaster.Broadcast(EventLocationUpdate, map[string]interface{}{
		"userId":   userID,
		"location": req.Location,
	})
}
