package routes

import (
	"Matrafl-Backend/internal/api/handlers"
	"Matrafl-Backend/internal/middleware"
	"Matrafl-Backend/pkg/session"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	AccountHandler     handlers.AccountHandler
	FoodHandler        handlers.FoodHandler
	RecipeHandler      handlers.RecipeHandler
	ConsumptionHandler handlers.ConsumptionHandler
	WeightHandler      handlers.WeightHandler
	DiaryHandler       handlers.DiaryHandler
	Middleware         middleware.Middleware
	SessionService     session.SessionService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Account()
	c.Foods()
	c.Recipes()
	c.Consumptions()
	c.Weights()
	c.Days()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Account() {
	auth := c.Middleware.AuthMiddleware(c.SessionService)
	account := c.App.Group("/api/v1/account")
	{
		account.Post("/login", c.AccountHandler.Login)
		account.Post("/logout", auth, c.AccountHandler.Logout)
		account.Get("/summary", auth, c.DiaryHandler.GetAccountSummary)
		account.Get("/export", auth, c.AccountHandler.Export)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.SessionService))
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Post("", c.FoodHandler.CreateFood)
	foods.Get("/:id", c.FoodHandler.GetFood)
	foods.Put("/:id", c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.FoodHandler.DeleteFood)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.SessionService))
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Get("/:id/ingredients", c.RecipeHandler.GetIngredients)

	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.SessionService))
	ingredients.Post("", c.RecipeHandler.CreateIngredient)
	ingredients.Get("/:id", c.RecipeHandler.GetIngredient)
	ingredients.Put("/:id", c.RecipeHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.RecipeHandler.DeleteIngredient)
}

func (c *Config) Consumptions() {
	auth := c.Middleware.AuthMiddleware(c.SessionService)

	consumptions := c.App.Group("/api/v1/consumptions", auth)
	consumptions.Get("", c.ConsumptionHandler.GetConsumptions)
	consumptions.Post("", c.ConsumptionHandler.CreateConsumption)
	consumptions.Get("/:id", c.ConsumptionHandler.GetConsumption)
	consumptions.Put("/:id", c.ConsumptionHandler.UpdateConsumption)
	consumptions.Delete("/:id", c.ConsumptionHandler.DeleteConsumption)

	c.App.Get("/api/v1/consumables", auth, c.ConsumptionHandler.GetConsumables)
}

func (c *Config) Weights() {
	weights := c.App.Group("/api/v1/weights", c.Middleware.AuthMiddleware(c.SessionService))
	weights.Get("", c.WeightHandler.GetWeights)
	weights.Post("", c.WeightHandler.CreateWeight)
	weights.Get("/:id", c.WeightHandler.GetWeight)
	weights.Put("/:id", c.WeightHandler.UpdateWeight)
	weights.Delete("/:id", c.WeightHandler.DeleteWeight)
}

func (c *Config) Days() {
	days := c.App.Group("/api/v1/days", c.Middleware.AuthMiddleware(c.SessionService))
	days.Get("/today", c.DiaryHandler.GetToday)
	days.Get("/:date", c.DiaryHandler.GetDay)
}
