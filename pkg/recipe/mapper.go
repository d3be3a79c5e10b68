package recipe

import (
	"recipe-service/domain"
	"recipe-service/entities"
)

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
		Servings:    r.Servings,
		CookingTime: r.CookingTime,
		Calories:    r.Calories,
		Protein:     r.Protein,
		Fat:         r.Fat,
		Carbs:       r.Carbs,
		Fiber:       r.Fiber,
		Sodium:      r.Sodium,
		Sugar:       r.Sugar,
		Ingredients: make([]domain.IngredientResponse, 0, len(r.Ingredients)),
		Steps:       make([]domain.StepResponse, 0, len(r.Steps)),
		Categories:  make([]domain.CategoryResponse, 0, len(r.RecipeCategories)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, i := range r.Ingredients {
		res.Ingredients = append(res.Ingredients, domain.IngredientResponse{
			ID:     i.ID.String(),
			Name:   i.Name,
			Amount: i.Amount,
		})
	}
	for _, s := range r.Steps {
		res.Steps = append(res.Steps, domain.StepResponse{
			ID:          s.ID.String(),
			Order:       s.Order,
			Instruction: s.Instruction,
		})
	}
	for _, rc := range r.RecipeCategories {
		if rc.Category == nil {
			continue
		}
		res.Categories = append(res.Categories, domain.CategoryResponse{
			ID:   rc.Category.ID.String(),
			Name: rc.Category.Name,
		})
	}
	return res
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	return out
}

// applyHeader copies the scalar fields of req onto r.
func applyHeader(r *entities.Recipe, req domain.RecipeRequest) {
	r.Name = req.Name
	r.Description = req.Description
	r.Servings = req.Servings
	if req.CookingTime != nil {
		r.CookingTime = *req.CookingTime
	}
	r.Calories = req.Calories
	r.Protein = req.Protein
	r.Fat = req.Fat
	r.Carbs = req.Carbs
	r.Fiber = req.Fiber
	r.Sodium = req.Sodium
	r.Sugar = req.Sugar
}

func ingredientRows(req domain.RecipeRequest) []entities.Ingredient {
	rows := make([]entities.Ingredient, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		rows = append(rows, entities.Ingredient{Name: in.Name, Amount: in.Amount})
	}
	return rows
}

func stepInstructions(req domain.RecipeRequest) []string {
	out := make([]string, 0, len(req.Steps))
	for _, s := range req.Steps {
		out = append(out, s.Instruction)
	}
	return out
}
