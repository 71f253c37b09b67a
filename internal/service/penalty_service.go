package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PenaltyService manages the append-only penalty points ledger
type PenaltyService interface {
	AddPenalty(ctx context.Context, userID string, req model.AddPenaltyRequest) (*model.Penalty, error)
	ListPenalties(ctx context.Context, userID string) ([]model.Penalty, error)
}

type penaltyService struct {
	penaltyRepo repository.PenaltyRepository
}

// NewPenaltyService creates a new PenaltyService
func NewPenaltyService(penaltyRepo repository.PenaltyRepository) PenaltyService {
	return &penaltyService{penaltyRepo: penaltyRepo}
}

// AddPenalty appends a penalty record owned by the caller
func (s *penaltyService) AddPenalty(ctx context.Context, userID string, req model.AddPenaltyRequest) (*model.Penalty, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	now := time.Now()
	penalty := &model.Penalty{
		UserID:    uid,
		Type:      req.Type,
		Points:    req.Points,
		Hash:      integrityHash(userID, req.Type, req.Points, now),
		CreatedAt: now,
	}

	if err := s.penaltyRepo.Create(ctx, penalty); err != nil {
		return nil, fmt.Errorf("failed to append penalty: %w", err)
	}
	return penalty, nil
}

// ListPenalties returns all penalty records owned by the caller
func (s *penaltyService) ListPenalties(ctx context.Context, userID string) ([]model.Penalty, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}
	penalties, err := s.penaltyRepo.FindByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}
	return penalties, nil
}

// integrityHash is a placeholder digest for a future external ledger; it
// binds the record to its owner, type, points and submission time.
func integrityHash(userID, penaltyType string, points int, at time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%d", userID, penaltyType, points, at.UnixNano())))
	return hex.EncodeToString(sum[:])
}
