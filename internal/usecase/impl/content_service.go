package impl

import (
	"context"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contentService implements the RecipeUsecase interface.
type contentService struct {
	recipeRepo   repository.RecipeRepository
	categoryRepo repository.CategoryRepository
}

// NewContentService is the constructor for contentService.
func NewContentService(
	recipeRepo repository.RecipeRepository,
	categoryRepo repository.CategoryRepository,
) usecase.RecipeUsecase {
	return &contentService{
		recipeRepo:   recipeRepo,
		categoryRepo: categoryRepo,
	}
}

func (srv *contentService) CreateRecipe(ctx context.Context, authorID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	recipe := &entity.Recipe{
		AuthorID:    authorID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (srv *contentService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("recipe not found")
		}

		return nil, err
	}

	return recipe, nil
}

func (srv *contentService) ListRecipes(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error) {
	return srv.recipeRepo.FindByAuthor(ctx, authorID)
}

func (srv *contentService) UpdateRecipe(ctx context.Context, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("recipe not found")
		}

		return nil, err
	}

	recipe.Name = input.Name
	recipe.Description = input.Description
	recipe.CategoryID = input.CategoryID
	if err := srv.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (srv *contentService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return srv.recipeRepo.Delete(ctx, id)
}

func (srv *contentService) CreateCategory(ctx context.Context, authorID uuid.UUID, name string) (*entity.Category, error) {
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	category := &entity.Category{AuthorID: authorID, Name: name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (srv *contentService) ListCategories(ctx context.Context, authorID uuid.UUID) ([]*entity.Category, error) {
	return srv.categoryRepo.FindByAuthor(ctx, authorID)
}

func (srv *contentService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return srv.categoryRepo.Delete(ctx, id)
}
