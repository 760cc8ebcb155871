package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smartkuliner-seller-service/internal/dto"
	"smartkuliner-seller-service/internal/model"
)

type RecipeRepository interface {
	Insert(ctx context.Context, r *model.Recipe) error
	FindByID(ctx context.Context, recipeID string) (*model.Recipe, error)
	FindAll(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, r *model.Recipe) error
	Delete(ctx context.Context, recipeID string) error
}

type RecipeService struct {
	repo RecipeRepository
	now  func() time.Time
}

func NewRecipeService(r RecipeRepository) *RecipeService {
	return &RecipeService{repo: r, now: time.Now}
}

func (s *RecipeService) Create(ctx context.Context, sellerID string, req dto.CreateRecipeRequest) (*model.Recipe, error) {
	now := s.now().UTC().Format(time.RFC3339)
	recipe := &model.Recipe{
		ID:          uuid.NewString(),
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return recipe, s.repo.Insert(ctx, recipe)
}

func (s *RecipeService) GetByID(ctx context.Context, recipeID string) (*model.Recipe, error) {
	return s.repo.FindByID(ctx, recipeID)
}

func (s *RecipeService) GetAll(ctx context.Context) ([]model.Recipe, error) {
	return s.repo.FindAll(ctx)
}

// Update edits a recipe; only its author may change it.
func (s *RecipeService) Update(ctx context.Context, recipeID, sellerID string, req dto.UpdateRecipeRequest) (*model.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.SellerID != sellerID {
		return nil, ErrForbidden
	}

	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Category = req.Category
	recipe.Ingredients = req.Ingredients
	recipe.Steps = req.Steps
	recipe.ImageURL = req.ImageURL
	recipe.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	return recipe, s.repo.Update(ctx, recipe)
}

func (s *RecipeService) Delete(ctx context.Context, recipeID, sellerID string) error {
	recipe, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if recipe.SellerID != sellerID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, recipeID)
}
