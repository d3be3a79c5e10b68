package recipe

import (
	"testing"

	"recipe-service/domain"
	"recipe-service/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsByName(fields []domain.FieldError) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateRecipeRequest(t *testing.T) {
	v := utils.NewValidator()

	tests := []struct {
		name   string
		mutate func(r *domain.RecipeRequest)
		fields []string
	}{
		{
			name:   "valid",
			mutate: func(r *domain.RecipeRequest) {},
		},
		{
			name:   "blank name",
			mutate: func(r *domain.RecipeRequest) { r.Name = "   " },
			fields: []string{"name"},
		},
		{
			name:   "zero servings",
			mutate: func(r *domain.RecipeRequest) { r.Servings = 0 },
			fields: []string{"servings"},
		},
		{
			name:   "missing cooking time",
			mutate: func(r *domain.RecipeRequest) { r.CookingTime = nil },
			fields: []string{"cooking_time"},
		},
		{
			name:   "zero cooking time is allowed",
			mutate: func(r *domain.RecipeRequest) { r.CookingTime = intPtr(0) },
		},
		{
			name:   "negative cooking time",
			mutate: func(r *domain.RecipeRequest) { r.CookingTime = intPtr(-1) },
			fields: []string{"cooking_time"},
		},
		{
			name: "negative nutrition",
			mutate: func(r *domain.RecipeRequest) {
				r.Calories = -1
				r.Sodium = -0.5
			},
			fields: []string{"calories", "sodium"},
		},
		{
			name:   "missing ingredients",
			mutate: func(r *domain.RecipeRequest) { r.Ingredients = nil },
			fields: []string{"ingredients"},
		},
		{
			name:   "empty steps",
			mutate: func(r *domain.RecipeRequest) { r.Steps = []domain.StepRequest{} },
			fields: []string{"steps"},
		},
		{
			name: "ingredient without amount",
			mutate: func(r *domain.RecipeRequest) {
				r.Ingredients = append(r.Ingredients, domain.IngredientRequest{Name: "Salt"})
			},
			fields: []string{"ingredients[1].amount"},
		},
		{
			name: "blank step",
			mutate: func(r *domain.RecipeRequest) {
				r.Steps = append(r.Steps, domain.StepRequest{Instruction: " "})
			},
			fields: []string{"steps[2].instruction"},
		},
		{
			name:   "blank category",
			mutate: func(r *domain.RecipeRequest) { r.Categories = []string{"side", ""} },
			fields: []string{"categories[1]"},
		},
		{
			name:   "no categories is fine",
			mutate: func(r *domain.RecipeRequest) { r.Categories = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := saladRequest()
			tt.mutate(&req)

			got := fieldsByName(ValidateRecipeRequest(v, req))
			if len(tt.fields) == 0 {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestValidateRecipeRequestMessages(t *testing.T) {
	v := utils.NewValidator()

	req := saladRequest()
	req.Name = ""
	req.Ingredients = []domain.IngredientRequest{}

	got := fieldsByName(ValidateRecipeRequest(v, req))
	assert.Equal(t, "the name field is required", got["name"])
	assert.Equal(t, "the ingredients field must have at least 1 item(s)", got["ingredients"])
}
