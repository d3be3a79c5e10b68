package seed

import (
	"context"
	_ "embed"
	"encoding/json"

	"recipe-service/domain"
	"recipe-service/entities"
	"recipe-service/internal/utils/logger"
	"recipe-service/pkg/category"
	"recipe-service/pkg/recipe"

	"gorm.io/gorm"
)

// BaseCategories always exist after seeding.
var BaseCategories = []string{"staple", "main", "side", "soup", "dessert"}

//go:embed recipes.json
var sampleRecipes []byte

func SampleRecipes() ([]domain.RecipeRequest, error) {
	var out []domain.RecipeRequest
	if err := json.Unmarshal(sampleRecipes, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Result struct {
	Categories int
	Recipes    int
}

// Seed resolves the base categories and, on an empty recipes table, writes
// the sample recipes through the recipe service. Running it again adds nothing.
func Seed(ctx context.Context, db *gorm.DB, categories category.CategoryRepository, recipes recipe.RecipeService, log *logger.Logger) (Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	var res Result

	resolved, err := categories.ResolveAll(ctx, nil, BaseCategories)
	if err != nil {
		return res, err
	}
	res.Categories = len(resolved)

	var existing int64
	if err := db.WithContext(ctx).Model(&entities.Recipe{}).Count(&existing).Error; err != nil {
		return res, err
	}
	if existing > 0 {
		log.Info("recipes already present, skipping samples", "count", existing)
		return res, nil
	}

	samples, err := SampleRecipes()
	if err != nil {
		return res, err
	}
	for _, req := range samples {
		created, err := recipes.CreateRecipe(ctx, req)
		if err != nil {
			return res, err
		}
		log.Debug("seeded recipe", "id", created.ID, "name", created.Name)
		res.Recipes++
	}
	return res, nil
}
