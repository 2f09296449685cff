package routes

import (
	"github.com/whyismycodered/NomNom/internal/api/handlers"
	"github.com/whyismycodered/NomNom/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
}

func (c *Config) Setup() {
	c.App.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("/", c.RecipeHandler.GetRecipes)
		recipes.Get("/filter", c.RecipeHandler.FilterByBudget)
		recipes.Get("/budget-range", c.RecipeHandler.FilterByBudgetRange)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func allowedOrigins() string {
	if origins := utils.GetConfig("ALLOWED_ORIGINS"); origins != "" {
		return origins
	}
	return "*"
}
