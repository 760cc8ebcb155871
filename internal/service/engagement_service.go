package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smartkuliner-seller-service/internal/model"
)

type LikeRepository interface {
	Like(ctx context.Context, like *model.RecipeLike) error
	Unlike(ctx context.Context, recipeID, userID string) error
}

// EngagementService fronts the favoriting primitive. Consistency between
// the join record and the recipe counter is the repository transaction's
// job; nothing is re-checked here.
type EngagementService struct {
	repo LikeRepository
	now  func() time.Time
}

func NewEngagementService(r LikeRepository) *EngagementService {
	return &EngagementService{repo: r, now: time.Now}
}

func (s *EngagementService) Like(ctx context.Context, recipeID, userID string) error {
	return s.repo.Like(ctx, &model.RecipeLike{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		UserID:    userID,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	})
}

func (s *EngagementService) Unlike(ctx context.Context, recipeID, userID string) error {
	return s.repo.Unlike(ctx, recipeID, userID)
}
