package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContentNotFound is returned when an owned content record is not found.
var ErrContentNotFound = errors.New("content not found")

// OwnershipChecker answers whether a user authored a piece of content. The
// authorization middleware depends only on this narrow view.
type OwnershipChecker interface {
	// IsAuthor reports whether the user with the given ID authored the
	// content with the given ID. A missing record is not an error; it
	// simply reports false.
	IsAuthor(ctx context.Context, contentID, userID uuid.UUID) (bool, error)
}

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	OwnershipChecker

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error)
	Create(ctx context.Context, recipe *entity.Recipe) error
	Update(ctx context.Context, recipe *entity.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines persistence operations for recipe categories.
type CategoryRepository interface {
	OwnershipChecker

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IngredientRepository defines persistence operations for recipe ingredients.
// Ingredients belong to a recipe and inherit its author.
type IngredientRepository interface {
	OwnershipChecker

	FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Ingredient, error)
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StepRepository defines persistence operations for recipe steps.
type StepRepository interface {
	OwnershipChecker

	FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Step, error)
	Create(ctx context.Context, step *entity.Step) error
	Update(ctx context.Context, step *entity.Step) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageRepository defines persistence operations for recipe images.
type ImageRepository interface {
	OwnershipChecker

	FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Image, error)
	Create(ctx context.Context, image *entity.Image) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OwnedContentType names a kind of content whose routes are protected by the
// ownership middleware.
type OwnedContentType string

// Content types recognised by the ownership middleware. Requests for any
// other type are rejected outright.
const (
	ContentRecipe     OwnedContentType = "recipe"
	ContentIngredient OwnedContentType = "ingredient"
	ContentStep       OwnedContentType = "step"
	ContentImage      OwnedContentType = "image"
	ContentCategory   OwnedContentType = "category"
)

// OwnershipRegistry maps content types to their ownership checkers.
type OwnershipRegistry map[OwnedContentType]OwnershipChecker
