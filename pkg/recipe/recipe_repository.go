package recipe

import (
	"context"
	"time"

	"recipe-service/entities"
	"recipe-service/internal/utils/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error
		UpdateRecipeHeader(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*entities.Recipe, error)
		GetRecipeWithChildren(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, tx *gorm.DB, sort Sort) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

		ReplaceIngredients(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, rows []entities.Ingredient) ([]entities.Ingredient, error)
		ReplaceSteps(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, instructions []string) ([]entities.Step, error)
		ReplaceCategories(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, categoryIDs []uuid.UUID) error
	}

	recipeRepository struct {
		db  *gorm.DB
		log *logger.Logger
	}
)

// headerColumns are rewritten in place on update; everything else on the row
// is owned by the database or by the child tables.
var headerColumns = []string{
	"name", "description", "servings", "cooking_time",
	"calories", "protein", "fat", "carbs", "fiber", "sodium", "sugar",
	"updated_at",
}

func NewRecipeRepository(db *gorm.DB, baseLog *logger.Logger) RecipeRepository {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &recipeRepository{db: db, log: baseLog.With("repo", "RecipeRepository")}
}

func (r *recipeRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		return r.db.WithContext(ctx)
	}
	return tx.WithContext(ctx)
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipeHeader(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	recipe.UpdatedAt = time.Now()
	res := r.conn(ctx, tx).
		Model(recipe).
		Select(headerColumns).
		Updates(recipe)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.conn(ctx, tx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeWithChildren(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := withChildren(r.conn(ctx, tx)).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, tx *gorm.DB, sort Sort) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := withChildren(r.conn(ctx, tx)).
		Order(sort.OrderBy()).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipe removes the association, step and ingredient rows and then the
// header. Call it inside a transaction; the foreign keys declared by the
// migration cascade the same way for any other writer.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	db := r.conn(ctx, tx)
	if err := db.Where("recipe_id = ?", id).Delete(&entities.RecipeCategory{}).Error; err != nil {
		return err
	}
	if err := db.Where("recipe_id = ?", id).Delete(&entities.Step{}).Error; err != nil {
		return err
	}
	if err := db.Where("recipe_id = ?", id).Delete(&entities.Ingredient{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&entities.Recipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
		}).
		Preload("RecipeCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("RecipeCategories.Category")
}
