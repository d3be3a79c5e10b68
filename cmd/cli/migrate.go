package cli

import (
	"recipe-service/cmd/config"
	migration "recipe-service/cmd/database/migrate"
	"recipe-service/internal/utils/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			return runMigrations(db, log)
		},
	}
}

func runMigrations(db *gorm.DB, log *logger.Logger) error {
	if err := migration.Migrate(db); err != nil {
		log.Error("migration failed", "error", err)
		return err
	}
	log.Info("database migration complete")
	return nil
}
