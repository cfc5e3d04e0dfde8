package routes

import (
	"Meal-Planner/internal/api/handlers"
	"Meal-Planner/internal/middleware"
	"Meal-Planner/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AdminHandler    handlers.AdminHandler
	ProductHandler  handlers.ProductHandler
	RecipeHandler   handlers.RecipeHandler
	FamilyHandler   handlers.FamilyHandler
	PlanHandler     handlers.PlanHandler
	ShoppingHandler handlers.ShoppingHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Admin()
	c.Products()
	c.Recipes()
	c.Family()
	c.Plan()
	c.ShoppingList()
}

// guarded puts the admin token checks in front of h.
func (c *Config) guarded(h fiber.Handler) []fiber.Handler {
	return []fiber.Handler{c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), h}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin")
	admin.Post("/login", c.AdminHandler.Login)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Get("", c.ProductHandler.GetProducts)
		products.Post("", c.ProductHandler.CreateProduct)
		products.Post("/export", c.guarded(c.ProductHandler.ExportProducts)...)
		products.Post("/import", c.guarded(c.ProductHandler.ImportProducts)...)
		products.Get("/:id", c.ProductHandler.GetProduct)
		products.Put("/:id", c.ProductHandler.UpdateProduct)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Post("/export", c.guarded(c.RecipeHandler.ExportRecipes)...)
		recipes.Post("/import", c.guarded(c.RecipeHandler.ImportRecipes)...)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Family() {
	family := c.App.Group("/api/v1/family")
	{
		family.Get("", c.FamilyHandler.GetMembers)
		family.Post("", c.guarded(c.FamilyHandler.CreateMember)...)
		family.Put("/:id", c.guarded(c.FamilyHandler.UpdateMember)...)
		family.Delete("/:id", c.guarded(c.FamilyHandler.DeleteMember)...)
	}
}

func (c *Config) Plan() {
	plan := c.App.Group("/api/v1/plan")
	{
		plan.Get("", c.PlanHandler.GetPlan)
		plan.Post("", c.PlanHandler.AddEntry)
		plan.Delete("", c.guarded(c.PlanHandler.ClearPlan)...)
		plan.Put("/batch", c.guarded(c.PlanHandler.BatchUpdate)...)
		plan.Get("/stats", c.PlanHandler.GetStats)
		plan.Post("/autofill", c.PlanHandler.AutofillOne)
		plan.Post("/autofill/week", c.PlanHandler.AutofillWeek)
		plan.Post("/export", c.guarded(c.PlanHandler.ExportPlan)...)
		plan.Post("/import", c.guarded(c.PlanHandler.ImportPlan)...)
		plan.Patch("/:id", c.PlanHandler.UpdateEntry)
		plan.Delete("/:id", c.PlanHandler.DeleteEntry)
	}
}

func (c *Config) ShoppingList() {
	shopping := c.App.Group("/api/v1/shopping-list")
	{
		shopping.Get("", c.ShoppingHandler.GetShoppingList)
		shopping.Post("/send", c.ShoppingHandler.SendShoppingList)
	}
}
