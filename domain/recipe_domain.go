package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageInvalidRecipe         = "the given data was invalid"
	MessageRecipeConflict        = "recipe write conflicted with another change, retry the request"

	ErrRecipeNotFound = errors.New("recipe not found")
)

const (
	SortDirectionAsc  = "asc"
	SortDirectionDesc = "desc"
)

type (
	// RecipeRequest is the body of both create and full-replace update.
	RecipeRequest struct {
		Name        string              `json:"name" validate:"notblank,max=255"`
		Description *string             `json:"description,omitempty"`
		Servings    int                 `json:"servings" validate:"required,min=1"`
		CookingTime *int                `json:"cooking_time" validate:"required,min=0"`
		Calories    int                 `json:"calories" validate:"min=0"`
		Protein     float64             `json:"protein" validate:"min=0"`
		Fat         float64             `json:"fat" validate:"min=0"`
		Carbs       float64             `json:"carbs" validate:"min=0"`
		Fiber       float64             `json:"fiber" validate:"min=0"`
		Sodium      float64             `json:"sodium" validate:"min=0"`
		Sugar       float64             `json:"sugar" validate:"min=0"`
		Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		Steps       []StepRequest       `json:"steps" validate:"required,min=1,dive"`
		Categories  []string            `json:"categories,omitempty" validate:"omitempty,dive,notblank,max=255"`
	}

	IngredientRequest struct {
		Name   string `json:"name" validate:"notblank,max=255"`
		Amount string `json:"amount" validate:"notblank,max=255"`
	}

	// StepRequest carries only the instruction. A client-sent "order" is
	// accepted and dropped: position in the steps array decides the order.
	StepRequest struct {
		Instruction string `json:"instruction" validate:"notblank"`
	}

	RecipeListRequest struct {
		OrderBy string
		Order   string
	}

	RecipeResponse struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		Description *string              `json:"description"`
		Servings    int                  `json:"servings"`
		CookingTime int                  `json:"cooking_time"`
		Calories    int                  `json:"calories"`
		Protein     float64              `json:"protein"`
		Fat         float64              `json:"fat"`
		Carbs       float64              `json:"carbs"`
		Fiber       float64              `json:"fiber"`
		Sodium      float64              `json:"sodium"`
		Sugar       float64              `json:"sugar"`
		Ingredients []IngredientResponse `json:"ingredients"`
		Steps       []StepResponse       `json:"steps"`
		Categories  []CategoryResponse   `json:"categories"`
		CreatedAt   time.Time            `json:"created_at"`
		UpdatedAt   time.Time            `json:"updated_at"`
	}

	IngredientResponse struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Amount string `json:"amount"`
	}

	StepResponse struct {
		ID          string `json:"id"`
		Order       int    `json:"order"`
		Instruction string `json:"instruction"`
	}

	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

// UnmarshalJSON accepts a step either as {"instruction": "..."} or as a bare
// string, which is how seed files usually list them.
func (s *StepRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &s.Instruction)
	}
	var raw struct {
		Instruction string `json:"instruction"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Instruction = raw.Instruction
	return nil
}
