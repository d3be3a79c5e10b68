package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recipe-service/domain"
	"recipe-service/entities"
	"recipe-service/internal/utils/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEmptyCategoryName = errors.New("category name is empty")

type (
	CategoryRepository interface {
		// Resolve returns the category with exactly this name, creating it when
		// absent. Within one transaction repeated calls see earlier inserts.
		Resolve(ctx context.Context, tx *gorm.DB, name string) (*entities.Category, error)
		ResolveAll(ctx context.Context, tx *gorm.DB, names []string) ([]*entities.Category, error)
	}

	categoryRepository struct {
		db  *gorm.DB
		log *logger.Logger
	}
)

func NewCategoryRepository(db *gorm.DB, baseLog *logger.Logger) CategoryRepository {
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &categoryRepository{db: db, log: baseLog.With("repo", "CategoryRepository")}
}

func (r *categoryRepository) Resolve(ctx context.Context, tx *gorm.DB, name string) (*entities.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	db := t.WithContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}

	var category entities.Category
	err := db.Where("name = ?", name).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}

	category = entities.Category{Name: name}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&category)
	if res.Error != nil {
		return nil, fmt.Errorf("create category: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		r.log.Debug("category created", "name", name, "id", category.ID)
		return &category, nil
	}

	// A concurrent transaction inserted the same name first.
	var existing entities.Category
	if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewError(domain.CodeConflict, "category.resolve", domain.MessageRecipeConflict, err)
		}
		return nil, fmt.Errorf("reload category: %w", err)
	}
	return &existing, nil
}

// ResolveAll resolves every distinct trimmed name, in first-seen order.
func (r *categoryRepository) ResolveAll(ctx context.Context, tx *gorm.DB, names []string) ([]*entities.Category, error) {
	out := make([]*entities.Category, 0, len(names))
	for _, name := range UniqueNames(names) {
		c, err := r.Resolve(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// UniqueNames trims names and drops blanks and repeats, keeping first-seen order.
func UniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
