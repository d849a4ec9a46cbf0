package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Syahrulalhabib/nutrivision-backend/models"
	"github.com/Syahrulalhabib/nutrivision-backend/services"
)

// Config is read once at startup and passed down; nothing re-reads the
// environment after init.
type Config struct {
	Port string

	// ModelURI is a local path or s3:// URI for the ONNX artifact.
	ModelURI string
	// OrtLibPath points at the onnxruntime shared library.
	OrtLibPath string

	// DatasetSource selects "file" (default) or "db".
	DatasetSource string
	// DatasetURI is a local path or s3:// URI for the JSON dataset.
	DatasetURI string

	// Neighbors is k for the recommendation engine.
	Neighbors int

	AWSRegion string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:          getenv("PORT", "8080"),
		ModelURI:      getenv("MODEL_PATH", "models/v1.onnx"),
		OrtLibPath:    os.Getenv("ORT_SHARED_LIB"),
		DatasetSource: getenv("DATASET_SOURCE", "file"),
		DatasetURI:    getenv("DATASET_PATH", "data/dataset.json"),
		Neighbors:     getenvInt("RECOMMEND_K", services.DefaultNeighbors),
		AWSRegion:     os.Getenv("AWS_REGION"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
	}
}

// InitDB connects to Postgres for the DB-backed catalog source.
func InitDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.FoodRecord{}); err != nil {
		return nil, fmt.Errorf("migrate food_items: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
