package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Ingredients []IngredientModel `gorm:"foreignKey:RecipeID"`
	Steps       []StepModel       `gorm:"foreignKey:RecipeID"`
	Images      []ImageModel      `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// IngredientModel mirrors the 'ingredients' table.
type IngredientModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity string    `gorm:"type:varchar(100)"`
	Position int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// StepModel mirrors the 'steps' table.
type StepModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Text     string    `gorm:"type:text;not null"`
	Position int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (StepModel) TableName() string {
	return "steps"
}

// ImageModel mirrors the 'images' table.
type ImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipeID  uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index;not null"`
	URL       string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "images"
}
