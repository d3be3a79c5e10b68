package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"recipe-service/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(dialector(), &gorm.Config{
		Logger:         gormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}

func dialector() gorm.Dialector {
	switch strings.ToLower(utils.GetConfig("DB_DRIVER")) {
	case "sqlite", "sqlite3":
		return sqlite.Open(SQLiteDSN(utils.GetConfig("DB_PATH")))
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfig("DB_SSLMODE"),
			utils.GetConfig("DB_TIMEZONE"),
		)
		return postgres.Open(dsn)
	}
}

// SQLiteDSN turns on foreign keys, which SQLite leaves off per connection.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=1"
	}
	return path + "?_foreign_keys=1"
}

func gormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  utils.GetConfig("APP_ENV") != "production",
		},
	)
}
