package postgres

import (
	"context"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isAuthor is the shared ownership predicate: a missing row reports false
// rather than an error, so the middleware can answer uniformly.
func isAuthor(ctx context.Context, db *gorm.DB, tableModel any, contentID, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(tableModel).
		Where("id = ? AND author_id = ?", contentID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check content ownership")
	}
	return count > 0, nil
}

// recipeRepository implements repository.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

func (repo *recipeRepository) IsAuthor(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return isAuthor(ctx, repo.db, &model.RecipeModel{}, contentID, userID)
}

func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	if err := repo.db.WithContext(ctx).First(&recipeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}
		return nil, errors.Wrap(err, "failed to find recipe")
	}
	return toRecipeDomain(&recipeM), nil
}

func (repo *recipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&recipeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by author")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}
	return recipes, nil
}

func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)
	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}
	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	return nil
}

func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	result := repo.db.WithContext(ctx).Model(&model.RecipeModel{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]any{
			"name":        recipe.Name,
			"description": recipe.Description,
			"category_id": recipe.CategoryID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}
	return nil
}

func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe")
	}
	return nil
}

func toRecipeDomain(recipeM *model.RecipeModel) *entity.Recipe {
	return &entity.Recipe{
		ID:          recipeM.ID,
		AuthorID:    recipeM.AuthorID,
		CategoryID:  recipeM.CategoryID,
		Name:        recipeM.Name,
		Description: recipeM.Description,
		CreatedAt:   recipeM.CreatedAt,
		UpdatedAt:   recipeM.UpdatedAt,
	}
}

func fromRecipeDomain(recipe *entity.Recipe) *model.RecipeModel {
	return &model.RecipeModel{
		ID:          recipe.ID,
		AuthorID:    recipe.AuthorID,
		CategoryID:  recipe.CategoryID,
		Name:        recipe.Name,
		Description: recipe.Description,
	}
}

// categoryRepository implements repository.CategoryRepository using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) IsAuthor(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return isAuthor(ctx, repo.db, &model.CategoryModel{}, contentID, userID)
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}
		return nil, errors.Wrap(err, "failed to find category")
	}
	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories by author")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}
	return categories, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		AuthorID: category.AuthorID,
		Name:     category.Name,
	}
	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}
	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Update("name", category.Name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}
	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete category")
	}
	return nil
}

func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        categoryM.ID,
		AuthorID:  categoryM.AuthorID,
		Name:      categoryM.Name,
		CreatedAt: categoryM.CreatedAt,
	}
}

// ingredientRepository implements repository.IngredientRepository using GORM.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (repo *ingredientRepository) IsAuthor(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return isAuthor(ctx, repo.db, &model.IngredientModel{}, contentID, userID)
}

func (repo *ingredientRepository) FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Ingredient, error) {
	var ingredientMs []model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("position ASC").
		Find(&ingredientMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredients by recipe")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientMs))
	for i := range ingredientMs {
		m := &ingredientMs[i]
		ingredients = append(ingredients, &entity.Ingredient{
			ID:       m.ID,
			RecipeID: m.RecipeID,
			AuthorID: m.AuthorID,
			Name:     m.Name,
			Quantity: m.Quantity,
			Position: m.Position,
		})
	}
	return ingredients, nil
}

func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := &model.IngredientModel{
		RecipeID: ingredient.RecipeID,
		AuthorID: ingredient.AuthorID,
		Name:     ingredient.Name,
		Quantity: ingredient.Quantity,
		Position: ingredient.Position,
	}
	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}
	ingredient.ID = ingredientM.ID
	return nil
}

func (repo *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	result := repo.db.WithContext(ctx).Model(&model.IngredientModel{}).
		Where("id = ?", ingredient.ID).
		Updates(map[string]any{
			"name":     ingredient.Name,
			"quantity": ingredient.Quantity,
			"position": ingredient.Position,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ingredient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}
	return nil
}

func (repo *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.IngredientModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ingredient")
	}
	return nil
}

// stepRepository implements repository.StepRepository using GORM.
type stepRepository struct {
	db *gorm.DB
}

// NewStepRepository is the constructor for stepRepository.
func NewStepRepository(db *gorm.DB) repository.StepRepository {
	return &stepRepository{db: db}
}

func (repo *stepRepository) IsAuthor(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return isAuthor(ctx, repo.db, &model.StepModel{}, contentID, userID)
}

func (repo *stepRepository) FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Step, error) {
	var stepMs []model.StepModel
	err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("position ASC").
		Find(&stepMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find steps by recipe")
	}

	steps := make([]*entity.Step, 0, len(stepMs))
	for i := range stepMs {
		m := &stepMs[i]
		steps = append(steps, &entity.Step{
			ID:       m.ID,
			RecipeID: m.RecipeID,
			AuthorID: m.AuthorID,
			Text:     m.Text,
			Position: m.Position,
		})
	}
	return steps, nil
}

func (repo *stepRepository) Create(ctx context.Context, step *entity.Step) error {
	stepM := &model.StepModel{
		RecipeID: step.RecipeID,
		AuthorID: step.AuthorID,
		Text:     step.Text,
		Position: step.Position,
	}
	if err := repo.db.WithContext(ctx).Create(stepM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create step")
	}
	step.ID = stepM.ID
	return nil
}

func (repo *stepRepository) Update(ctx context.Context, step *entity.Step) error {
	result := repo.db.WithContext(ctx).Model(&model.StepModel{}).
		Where("id = ?", step.ID).
		Updates(map[string]any{
			"text":     step.Text,
			"position": step.Position,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update step")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}
	return nil
}

func (repo *stepRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.StepModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete step")
	}
	return nil
}

// imageRepository implements repository.ImageRepository using GORM.
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository is the constructor for imageRepository.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{db: db}
}

func (repo *imageRepository) IsAuthor(ctx context.Context, contentID, userID uuid.UUID) (bool, error) {
	return isAuthor(ctx, repo.db, &model.ImageModel{}, contentID, userID)
}

func (repo *imageRepository) FindByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Image, error) {
	var imageMs []model.ImageModel
	err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC").
		Find(&imageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find images by recipe")
	}

	images := make([]*entity.Image, 0, len(imageMs))
	for i := range imageMs {
		m := &imageMs[i]
		images = append(images, &entity.Image{
			ID:        m.ID,
			RecipeID:  m.RecipeID,
			AuthorID:  m.AuthorID,
			URL:       m.URL,
			CreatedAt: m.CreatedAt,
		})
	}
	return images, nil
}

func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := &model.ImageModel{
		RecipeID: image.RecipeID,
		AuthorID: image.AuthorID,
		URL:      image.URL,
	}
	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}
	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt
	return nil
}

func (repo *imageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Delete(&model.ImageModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete image")
	}
	return nil
}
