package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"recipe-service/internal/api/handlers"
	"recipe-service/internal/api/routes"
	"recipe-service/internal/middleware"
	"recipe-service/internal/utils"
	applog "recipe-service/internal/utils/logger"
	"recipe-service/pkg/aggregate"
	"recipe-service/pkg/category"
	"recipe-service/pkg/jwt"
	"recipe-service/pkg/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, log *applog.Logger) (*fiber.App, error) {
	if log == nil {
		log = applog.Nop()
	}
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") != "production",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New())

	// setting up logging and limiter
	out, err := accessLogOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     out,
	}))

	if rateMax := utils.GetConfigInt("RATE_LIMIT_MAX", 20); rateMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        rateMax,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db, log)
	categoryRepository := category.NewCategoryRepository(db, log)

	// Service
	jwtService := jwt.NewJWTService()
	writer := aggregate.NewWriter(db, log)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, writer, validator, log)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()

	if !jwtService.Enabled() {
		log.Warn("JWT_SECRET is empty, write routes are not guarded")
	}
	return app, nil
}

// accessLogOutput opens the access log file, or returns stdout when path is empty.
func accessLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}
