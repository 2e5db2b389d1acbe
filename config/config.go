package config

import (
	"fmt"
	"os"

	"github.com/vidheexx/Nutrimate/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Addr       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads .env if present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:       getenv("ADDR", ":8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "nutrimate"),
		DBPort:     getenv("DB_PORT", "5432"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DailyGoal{},
		&models.BowlCalibration{},
		&models.Meal{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}

	return db, nil
}
