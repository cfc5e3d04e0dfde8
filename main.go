package main

import (
	"Meal-Planner/cmd/config"
	migration "Meal-Planner/cmd/database/migrate"
	"Meal-Planner/internal/utils"
	"os"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration: %v", err)
	}
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("app: %v", err)
	}
	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
