package config

import (
	"fmt"
	"log"
	"os"

	"github.com/PaperBaghaha/Calorieai/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// App holds the provider credentials and endpoints recognized by the service.
// Only the vision key is required to serve analyze requests; its absence is
// reported per-request, not at startup.
var App AppConfig

var DB *gorm.DB

type AppConfig struct {
	Port string

	OpenAIAPIKey  string
	VisionModel   string
	OpenAIBaseURL string

	NutritionixAppID   string
	NutritionixAppKey  string
	NutritionixBaseURL string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func InitApp() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	App = AppConfig{
		Port: getEnv("PORT", "8080"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		VisionModel:   getEnv("VISION_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),

		NutritionixAppID:   os.Getenv("NUTRITIONIX_APP_ID"),
		NutritionixAppKey:  os.Getenv("NUTRITIONIX_APP_KEY"),
		NutritionixBaseURL: getEnv("NUTRITIONIX_BASE_URL", "https://trackapi.nutritionix.com"),
	}
}

// InitDB connects the meal log store. The store is optional: without DB_HOST
// the analyze pipeline still works and only the meal endpoints are disabled.
func InitDB() {
	if os.Getenv("DB_HOST") == "" {
		log.Println("DB_HOST not set, meal log store disabled")
		return
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getEnv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.MealLog{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	DB = db
}
