package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileService serves the caller's profile and itineraries
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	CreateItinerary(ctx context.Context, userID string, req model.CreateItineraryRequest) (*model.Itinerary, error)
}

type profileService struct {
	userRepo      repository.UserRepository
	itineraryRepo repository.ItineraryRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repository.UserRepository, itineraryRepo repository.ItineraryRepository) ProfileService {
	return &profileService{
		userRepo:      userRepo,
		itineraryRepo: itineraryRepo,
	}
}

// GetProfile returns the caller's user record joined with their itineraries
func (s *profileService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	itineraries, err := s.itineraryRepo.FindByUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load itineraries: %w", err)
	}

	return &model.Profile{User: user, Itinerary: itineraries}, nil
}

// CreateItinerary stores an itinerary owned by the caller
func (s *profileService) CreateItinerary(ctx context.Context, userID string, req model.CreateItineraryRequest) (*model.Itinerary, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	itinerary := &model.Itinerary{
		UserID:    uid,
		Locations: req.Locations,
		CreatedAt: time.Now(),
	}
	if err := s.itineraryRepo.Create(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}
	return itinerary, nil
}
