package config

import (
	"Matrafl-Backend/internal/api/handlers"
	"Matrafl-Backend/internal/api/routes"
	"Matrafl-Backend/internal/middleware"
	"Matrafl-Backend/internal/utils"
	"Matrafl-Backend/pkg/consumable"
	"Matrafl-Backend/pkg/consumption"
	"Matrafl-Backend/pkg/diary"
	"Matrafl-Backend/pkg/export"
	"Matrafl-Backend/pkg/food"
	"Matrafl-Backend/pkg/recipe"
	"Matrafl-Backend/pkg/session"
	"Matrafl-Backend/pkg/user"
	"Matrafl-Backend/pkg/weight"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services are the pieces the HTTP app and the CLI commands share.
type Services struct {
	Session     session.SessionService
	User        user.UserService
	Food        food.FoodService
	Recipe      recipe.RecipeService
	Consumption consumption.ConsumptionService
	Consumable  consumable.ConsumableService
	Weight      weight.WeightService
	Diary       diary.DiaryService
	Export      export.ExportService
}

func NewServices(db *gorm.DB, log *zap.Logger) *Services {
	// Repository
	sessionRepository := session.NewSessionRepository(db)
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	consumptionRepository := consumption.NewConsumptionRepository(db)
	consumableRepository := consumable.NewConsumableRepository(db)
	weightRepository := weight.NewWeightRepository(db)
	exportRepository := export.NewExportRepository(db)

	// Service
	sessionService := session.NewSessionService(sessionRepository, utils.SessionDays())
	userService := user.NewUserService(userRepository, sessionService, user.NewPasswordHasher(), log)
	foodService := food.NewFoodService(foodRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, foodService)
	consumptionService := consumption.NewConsumptionService(consumptionRepository, foodService, recipeService)
	consumableService := consumable.NewConsumableService(consumableRepository)
	weightService := weight.NewWeightService(weightRepository)

	return &Services{
		Session:     sessionService,
		User:        userService,
		Food:        foodService,
		Recipe:      recipeService,
		Consumption: consumptionService,
		Consumable:  consumableService,
		Weight:      weightService,
		Diary:       diary.NewDiaryService(weightService, consumptionService, consumableService),
		Export:      export.NewExportService(exportRepository),
	}
}

func NewApp(services *Services) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	cookieName := utils.GetConfig("SESSION_COOKIE_NAME")
	middlewares := middleware.NewMiddleware(cookieName)
	validator := utils.Validate

	// setting up access log and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Handler
	accountHandler := handlers.NewAccountHandler(
		services.User,
		services.Session,
		services.Export,
		validator,
		handlers.SessionCookie{Name: cookieName, Days: utils.SessionDays()},
	)
	foodHandler := handlers.NewFoodHandler(services.Food, services.Consumption, validator)
	recipeHandler := handlers.NewRecipeHandler(services.Recipe, services.Consumption, validator)
	consumptionHandler := handlers.NewConsumptionHandler(services.Consumption, services.Consumable, validator)
	weightHandler := handlers.NewWeightHandler(services.Weight, validator)
	diaryHandler := handlers.NewDiaryHandler(services.Diary)

	// routes
	routesConfig := routes.Config{
		App:                app,
		AccountHandler:     accountHandler,
		FoodHandler:        foodHandler,
		RecipeHandler:      recipeHandler,
		ConsumptionHandler: consumptionHandler,
		WeightHandler:      weightHandler,
		DiaryHandler:       diaryHandler,
		Middleware:         middlewares,
		SessionService:     services.Session,
	}
	routesConfig.Setup()
	return app, nil
}
