package migration

import (
	"Meal-Planner/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FamilyMember{}); err != nil {
		log.Fatalf("Error migrating family member database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WeeklyPlanEntry{}); err != nil {
		log.Fatalf("Error migrating weekly plan database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
