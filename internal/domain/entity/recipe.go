package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a user-authored recipe. The content model is deliberately thin:
// recipes exist here mainly as owned resources for the authorization layer,
// with enough fields for the CRUD surface to be useful.
type Recipe struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	CategoryID  *uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups recipes and is owned by the user who created it.
type Category struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Ingredient is a single line of a recipe's ingredient list.
type Ingredient struct {
	ID       uuid.UUID
	RecipeID uuid.UUID
	AuthorID uuid.UUID
	Name     string
	Quantity string
	Position int
}

// Step is a single instruction in a recipe.
type Step struct {
	ID       uuid.UUID
	RecipeID uuid.UUID
	AuthorID uuid.UUID
	Text     string
	Position int
}

// Image is an uploaded picture attached to a recipe.
type Image struct {
	ID        uuid.UUID
	RecipeID  uuid.UUID
	AuthorID  uuid.UUID
	URL       string
	CreatedAt time.Time
}
