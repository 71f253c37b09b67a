package service

import (
	"context"
	"testing"

	"github.com/Shobhanashankar/TourSafe/internal/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePenaltyRepo struct {
	penalties []model.Penalty
	createErr error
}

func (f *fakePenaltyRepo) Create(ctx context.Context, penalty *model.Penalty) error {
	if f.createErr != nil {
		return f.createErr
	}
	penalty.ID = primitive.NewObjectID()
	f.penalties = append(f.penalties, *penalty)
	return nil
}

func (f *fakePenaltyRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Penalty, error) {
	out := []model.Penalty{}
	for _, p := range f.penalties {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestPenaltyService_AddPenalty(t *testing.T) {
	repo := &fakePenaltyRepo{}
	svc := NewPenaltyService(repo)
	owner := primitive.NewObjectID()

	penalty, err := svc.AddPenalty(context.Background(), owner.Hex(), model.AddPenaltyRequest{Type: "littering", Points: 10})

	assert.NoError(t, err)
	assert.Equal(t, owner, penalty.UserID)
	assert.Equal(t, "littering", penalty.Type)
	assert.Equal(t, 10, penalty.Points)
	assert.Len(t, penalty.Hash, 64) // sha256 hex digest
	assert.False(t, penalty.CreatedAt.IsZero())
}

func TestPenaltyService_AddPenalty_HashBindsRecord(t *testing.T) {
	repo := &fakePenaltyRepo{}
	svc := NewPenaltyService(repo)
	owner := primitive.NewObjectID()

	p1, err := svc.AddPenalty(context.Background(), owner.Hex(), model.AddPenaltyRequest{Type: "littering", Points: 10})
	assert.NoError(t, err)
	p2, err := svc.AddPenalty(context.Background(), owner.Hex(), model.AddPenaltyRequest{Type: "littering", Points: 10})
	assert.NoError(t, err)

	// Submission time is part of the digest, so identical payloads yield
	// distinct hashes
	assert.NotEqual(t, p1.Hash, p2.Hash)
}

func TestPenaltyService_ListPenalties_OwnerScoped(t *testing.T) {
	repo := &fakePenaltyRepo{}
	svc := NewPenaltyService(repo)
	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()

	_, err := svc.AddPenalty(context.Background(), u1.Hex(), model.AddPenaltyRequest{Type: "littering", Points: 10})
	assert.NoError(t, err)
	_, err = svc.AddPenalty(context.Background(), u2.Hex(), model.AddPenaltyRequest{Type: "trespassing", Points: 25})
	assert.NoError(t, err)

	penalties, err := svc.ListPenalties(context.Background(), u1.Hex())
	assert.NoError(t, err)
	assert.Len(t, penalties, 1)
	for _, p := range penalties {
		assert.Equal(t, u1, p.UserID)
	}
}

func TestPenaltyService_InvalidUserID(t *testing.T) {
	svc := NewPenaltyService(&fakePenaltyRepo{})

	_, err := svc.AddPenalty(context.Background(), "garbage", model.AddPenaltyRequest{Type: "x", Points: 1})
	assert.ErrorIs(t, err, ErrInvalidUserID)

	_, err = svc.ListPenalties(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidUserID)
}
