package config

import (
	"Meal-Planner/internal/api/handlers"
	"Meal-Planner/internal/api/routes"
	"Meal-Planner/internal/middleware"
	"Meal-Planner/internal/utils"
	"Meal-Planner/internal/utils/mailing"
	"Meal-Planner/internal/utils/storage"
	"Meal-Planner/pkg/admin"
	"Meal-Planner/pkg/family"
	"Meal-Planner/pkg/jwt"
	"Meal-Planner/pkg/plan"
	"Meal-Planner/pkg/product"
	"Meal-Planner/pkg/recipe"
	"Meal-Planner/pkg/shopping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Clock returns the current time in APP_TIMEZONE, which decides what
// "today" and the current meal are.
func Clock() func() time.Time {
	loc, err := time.LoadLocation(utils.GetConfig("APP_TIMEZONE"))
	if err != nil {
		log.Warnw("unknown APP_TIMEZONE, using UTC", "error", err)
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3()
	if err != nil {
		log.Fatalf("error creating backup storage: %v", err)
	}
	now := Clock()

	// Repository
	productRepository := product.NewProductRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	familyRepository := family.NewFamilyRepository(db)
	planRepository := plan.NewPlanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	adminService := admin.NewAdminService(jwtService, utils.GetConfig("ADMIN_PASSWORD_HASH"))
	productService := product.NewProductService(productRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, productRepository, s3)
	familyService := family.NewFamilyService(familyRepository)
	planService := plan.NewPlanService(planRepository, s3, now, nil)
	shoppingService := shopping.NewShoppingService(planRepository, mailing.SendMail)

	// Handler
	adminHandler := handlers.NewAdminHandler(adminService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	familyHandler := handlers.NewFamilyHandler(familyService, validator)
	planHandler := handlers.NewPlanHandler(planService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AdminHandler:    adminHandler,
		ProductHandler:  productHandler,
		RecipeHandler:   recipeHandler,
		FamilyHandler:   familyHandler,
		PlanHandler:     planHandler,
		ShoppingHandler: shoppingHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
