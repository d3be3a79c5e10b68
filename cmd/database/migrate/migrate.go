package migration

import (
	"recipe-service/entities"

	"gorm.io/gorm"
)

// Models lists every table in dependency order. Parents come first so that
// the cascading foreign keys declared on the entities can be created.
func Models() []interface{} {
	return []interface{}{
		&entities.Category{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.Step{},
		&entities.RecipeCategory{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
