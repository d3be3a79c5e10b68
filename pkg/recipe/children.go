package recipe

import (
	"context"

	"recipe-service/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Child rows are never diffed. Every write deletes the recipe's existing rows
// of a kind and inserts the new set, so child ids change on every update.

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, rows []entities.Ingredient) ([]entities.Ingredient, error) {
	fresh := make([]entities.Ingredient, 0, len(rows))
	for _, row := range rows {
		fresh = append(fresh, entities.Ingredient{
			RecipeID: recipeID,
			Name:     row.Name,
			Amount:   row.Amount,
		})
	}
	if err := r.replaceChildren(ctx, tx, recipeID, &entities.Ingredient{}, &fresh, len(fresh)); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ReplaceSteps numbers steps 1..N by their position in instructions.
func (r *recipeRepository) ReplaceSteps(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, instructions []string) ([]entities.Step, error) {
	fresh := make([]entities.Step, 0, len(instructions))
	for i, instruction := range instructions {
		fresh = append(fresh, entities.Step{
			RecipeID:    recipeID,
			Order:       i + 1,
			Instruction: instruction,
		})
	}
	if err := r.replaceChildren(ctx, tx, recipeID, &entities.Step{}, &fresh, len(fresh)); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ReplaceCategories drops every association of the recipe and links the given
// categories. Repeated ids collapse to one row.
func (r *recipeRepository) ReplaceCategories(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, categoryIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(categoryIDs))
	links := make([]entities.RecipeCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, entities.RecipeCategory{RecipeID: recipeID, CategoryID: id})
	}

	db := r.conn(ctx, tx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeCategory{}).Error; err != nil {
		return err
	}
	if len(links) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "category_id"}},
		DoNothing: true,
	}).Create(&links).Error
}

func (r *recipeRepository) replaceChildren(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, model interface{}, rows interface{}, n int) error {
	db := r.conn(ctx, tx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return db.Create(rows).Error
}
