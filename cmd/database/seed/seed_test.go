package seed

import (
	"context"
	"testing"

	"recipe-service/entities"
	"recipe-service/internal/testutil"
	"recipe-service/internal/utils"
	"recipe-service/pkg/aggregate"
	"recipe-service/pkg/category"
	"recipe-service/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRecipesParse(t *testing.T) {
	samples, err := SampleRecipes()
	require.NoError(t, err)
	require.Len(t, samples, 5)

	v := utils.NewValidator()
	for _, s := range samples {
		assert.Empty(t, recipe.ValidateRecipeRequest(v, s), s.Name)
		assert.NotEmpty(t, s.Steps[0].Instruction)
	}
}

func TestSeedRunsOnce(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	categories := category.NewCategoryRepository(db, log)
	recipes := recipe.NewRecipeService(
		recipe.NewRecipeRepository(db, log),
		categories,
		aggregate.NewWriter(db, log),
		utils.NewValidator(),
		log,
	)
	ctx := context.Background()

	res, err := Seed(ctx, db, categories, recipes, log)
	require.NoError(t, err)
	assert.Equal(t, Result{Categories: 5, Recipes: 5}, res)

	res, err = Seed(ctx, db, categories, recipes, log)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Recipes)

	assert.EqualValues(t, 5, testutil.Count(t, db, &entities.Category{}, ""))
	assert.EqualValues(t, 5, testutil.Count(t, db, &entities.Recipe{}, ""))
	assert.EqualValues(t, 6, testutil.Count(t, db, &entities.RecipeCategory{}, ""))
}
