package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration
	TaxRate   float64 // เช่น 0.08 = 8%
	SeedDemo  bool
	BaseURL   string // ใช้สร้างลิงก์ tracking บน QR
}

func LoadConfig() *Config {
	// .env ไม่มีก็ไม่เป็นไร (prod ใช้ env จริง)
	_ = godotenv.Load()

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "foodhub.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,
		TaxRate:   getEnvFloat("TAX_RATE", 0.08),
		SeedDemo:  getEnv("SEED_DEMO", "") == "true",
		BaseURL:   getEnv("BASE_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}
