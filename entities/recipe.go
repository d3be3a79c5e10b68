// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Servings    int       `gorm:"not null;default:1" json:"servings"`
	CookingTime int       `gorm:"not null" json:"cooking_time"` // minutes
	Calories    int       `gorm:"not null;default:0" json:"calories"`
	Protein     float64   `gorm:"not null;default:0" json:"protein"`
	Fat         float64   `gorm:"not null;default:0" json:"fat"`
	Carbs       float64   `gorm:"not null;default:0" json:"carbs"`
	Fiber       float64   `gorm:"not null;default:0" json:"fiber"`
	Sodium      float64   `gorm:"not null;default:0" json:"sodium"` // mg
	Sugar       float64   `gorm:"not null;default:0" json:"sugar"`

	Ingredients      []Ingredient     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps            []Step           `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
	RecipeCategories []RecipeCategory `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	return assignID(&r.ID)
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Amount   string    `gorm:"size:255;not null" json:"amount"` // free form, e.g. "2 tbsp"
	Timestamp
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	return assignID(&i.ID)
}

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Order       int       `gorm:"column:order;not null" json:"order"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	Timestamp
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	return assignID(&s.ID)
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Timestamp
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	return assignID(&c.ID)
}

// RecipeCategory is the association row between a recipe and a shared category.
// Removing either side removes the row; the category itself outlives its recipes.
type RecipeCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:recipe_category_unique" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:recipe_category_unique" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Timestamp
}

func (rc *RecipeCategory) BeforeCreate(tx *gorm.DB) error {
	return assignID(&rc.ID)
}
