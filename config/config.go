package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Telegram TelegramConfig
	Pricing  PricingConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token string
}

type PricingConfig struct {
	BasePrice         float64 // base price of one ice cream before the size multiplier
	ServiceChargeRate float64 // flat rate added on top of the order total
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	basePrice, err := strconv.ParseFloat(getEnv("BASE_PRICE", "5.0"), 64)
	if err != nil || basePrice <= 0 {
		basePrice = 5.0
	}

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "parlor"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Pricing: PricingConfig{
			BasePrice:         basePrice,
			ServiceChargeRate: 0.05,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
