package config

import (
	"Meal-Planner/internal/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectAttempts = 10
	maxBackoff      = 10 * time.Second
)

func DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		utils.GetConfig("APP_TIMEZONE"),
	)
}

// ConnectDB opens the database, retrying with exponential backoff while
// postgres is still starting.
func ConnectDB() (*gorm.DB, error) {
	return connect(DSN(), connectAttempts)
}

func connect(dsn string, attempts int) (*gorm.DB, error) {
	var err error
	for i := 1; i <= attempts; i++ {
		var db *gorm.DB
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					log.Infow("database connected", "attempt", i)
					return db, nil
				}
			} else {
				err = dbErr
			}
		}

		log.Warnw("database connection failed", "attempt", i, "error", err)
		if i < attempts {
			time.Sleep(backoff(i))
		}
	}
	return nil, fmt.Errorf("database connection failed after %d attempts: %w", attempts, err)
}

func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<uint(attempt-1)) * time.Second
	return min(wait, maxBackoff)
}
