package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Shobhanashankar/TourSafe/internal/model"
)

// SafetyService scores location features and flags anomalies. It fronts the
// external ML sidecar when one is configured and falls back to a local
// heuristic when the sidecar is absent or unreachable.
type SafetyService interface {
	Score(ctx context.Context, features model.SafetyFeatures) *model.SafetyScore
	DetectAnomaly(ctx context.Context, features model.SafetyFeatures) *model.AnomalyResult
}

type safetyService struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewSafetyService creates a SafetyService. An empty baseURL disables the
// sidecar and every request uses the local heuristic.
func NewSafetyService(baseURL string, logger *slog.Logger) SafetyService {
	return &safetyService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

// Score returns a 0-100 safety score with a traffic-light color and a tip
func (s *safetyService) Score(ctx context.Context, features model.SafetyFeatures) *model.SafetyScore {
	if s.baseURL != "" {
		var remote model.SafetyScore
		err := s.post(ctx, "/predict-safety", features, &remote)
		if err == nil {
			return &remote
		}
		s.logger.Error("safety sidecar unavailable, using local heuristic", "err", err)
	}
	return heuristicScore(features)
}

// DetectAnomaly reports whether the submitted features look anomalous
func (s *safetyService) DetectAnomaly(ctx context.Context, features model.SafetyFeatures) *model.AnomalyResult {
	if s.baseURL != "" {
		var remote model.AnomalyResult
		err := s.post(ctx, "/detect-anomaly", features, &remote)
		if err == nil {
			return &remote
		}
		s.logger.Error("anomaly sidecar unavailable, using local heuristic", "err", err)
	}
	// Same fallback rule the sidecar applies when its model is unavailable
	return &model.AnomalyResult{Anomaly: features.Risk > 0.8}
}

func (s *safetyService) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode sidecar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sidecar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sidecar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sidecar returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode sidecar response: %w", err)
	}
	return nil
}

// heuristicScore is a weighted linear stand-in for the trained regressor,
// risk counting double the other features
func heuristicScore(f model.SafetyFeatures) *model.SafetyScore {
	score := 100 * (1 - (0.4*f.Risk + 0.2*f.Speed + 0.2*f.Weather + 0.2*f.Crowd))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return classify(score)
}

// classify maps a score to the color/tip bands used by the mobile client
func classify(score float64) *model.SafetyScore {
	out := &model.SafetyScore{Score: score}
	switch {
	case score >= 80:
		out.Color = "green"
		out.Tip = "Adventure Ready!"
	case score >= 50:
		out.Color = "yellow"
		out.Tip = "Proceed with Caution"
	default:
		out.Color = "red"
		out.Tip = "Reroute Recommended"
	}
	return out
}
