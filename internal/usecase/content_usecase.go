package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to create a recipe.
type CreateRecipeInput struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// UpdateRecipeInput defines the data required to update a recipe.
type UpdateRecipeInput struct {
	ID          uuid.UUID  `json:"-"`
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

// RecipeUsecase defines business operations for recipes and their
// categories. Ownership enforcement happens in the delivery layer; these
// operations trust the IDs they are given.
type RecipeUsecase interface {
	CreateRecipe(ctx context.Context, authorID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, input *UpdateRecipeInput) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, authorID uuid.UUID, name string) (*entity.Category, error)
	ListCategories(ctx context.Context, authorID uuid.UUID) ([]*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
