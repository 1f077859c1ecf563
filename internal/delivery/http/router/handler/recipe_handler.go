package handler

import (
	"net/http"
	"time"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe and category endpoints.
type RecipeHandler struct {
	uc usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

type recipeResponse struct {
	ID          uuid.UUID  `json:"id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newRecipeResponse(recipe *entity.Recipe) *recipeResponse {
	return &recipeResponse{
		ID:          recipe.ID,
		AuthorID:    recipe.AuthorID,
		CategoryID:  recipe.CategoryID,
		Name:        recipe.Name,
		Description: recipe.Description,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}

// CreateRecipe creates a recipe owned by the authenticated user.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var input usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe input")
	}

	auth := middleware.CurrentAuth(c)

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), auth.User.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newRecipeResponse(recipe), "Recipe created")
}

// GetRecipe returns one recipe. Ownership is enforced by the route.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecipeResponse(recipe), "Recipe found")
}

// ListRecipes returns the authenticated user's recipes.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	auth := middleware.CurrentAuth(c)

	recipes, err := h.uc.ListRecipes(c.Request().Context(), auth.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]*recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, newRecipeResponse(recipe))
	}

	return response.Success(c, http.StatusOK, result, "Recipes listed")
}

// UpdateRecipe updates one recipe. Ownership is enforced by the route.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	var input usecase.UpdateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe input")
	}
	input.ID = id

	recipe, err := h.uc.UpdateRecipe(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRecipeResponse(recipe), "Recipe updated")
}

// DeleteRecipe deletes one recipe. Ownership is enforced by the route.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe deleted")
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreateCategory creates a category owned by the authenticated user.
func (h *RecipeHandler) CreateCategory(c echo.Context) error {
	var input createCategoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category input")
	}

	auth := middleware.CurrentAuth(c)

	category, err := h.uc.CreateCategory(c.Request().Context(), auth.User.ID, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// ListCategories returns the authenticated user's categories.
func (h *RecipeHandler) ListCategories(c echo.Context) error {
	auth := middleware.CurrentAuth(c)

	categories, err := h.uc.ListCategories(c.Request().Context(), auth.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories listed")
}

// DeleteCategory deletes one category. Ownership is enforced by the route.
func (h *RecipeHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}
